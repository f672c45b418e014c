package apolloenv

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-apollo-env/internal/adapter"
	"github.com/MKhiriev/go-apollo-env/internal/config"
	"github.com/MKhiriev/go-apollo-env/internal/logger"
	"github.com/MKhiriev/go-apollo-env/internal/service"
	"github.com/MKhiriev/go-apollo-env/internal/store"
	"github.com/MKhiriev/go-apollo-env/internal/utils"
	"github.com/MKhiriev/go-apollo-env/models"
	"github.com/rs/zerolog"
)

// Options configures a [Client]. The zero value is ready to use.
type Options struct {
	// BaseDir is the directory env file names are resolved against.
	// Defaults to [DefaultBaseDir].
	BaseDir string

	// RequestTimeout bounds every request to the config server.
	// Defaults to 15 seconds.
	RequestTimeout time.Duration

	// Logger receives debug output. Nil discards it.
	Logger *zerolog.Logger
}

// Client runs fetch-config requests. It is safe for concurrent use, although
// concurrent writes to the same env file are not coordinated.
type Client struct {
	configService service.ConfigService
	baseDir       string
}

// startDir is resolved once, when the package is initialized.
var startDir, startDirErr = utils.RealWorkingDir()

// DefaultBaseDir returns the symlink-resolved working directory the process
// started in. It falls back to "." when that directory could not be
// resolved.
func DefaultBaseDir() string {
	if startDirErr != nil {
		return "."
	}
	return startDir
}

// New builds a [Client] from opts.
func New(opts Options) *Client {
	log := logger.Wrap(opts.Logger)

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}

	storages := &store.Storages{
		EnvFileStorage: store.NewEnvFileStorage(baseDir, log),
	}
	configServerAdapter := adapter.NewHTTPConfigServerAdapter(config.Adapter{RequestTimeout: opts.RequestTimeout}, log)
	services := service.NewServices(configServerAdapter, storages, log)

	return &Client{
		configService: services.ConfigService,
		baseDir:       baseDir,
	}
}

// BaseDir returns the directory env file names are resolved against.
func (c *Client) BaseDir() string {
	return c.baseDir
}

// FetchConfig fetches every namespace of req, merges the results and, when
// req.Output is an [models.EnvFile], writes the env file and loads it into
// the process environment if requested. The merged configuration is returned
// in both cases.
//
// Required fields are checked before any request is made. Namespaces
// answering with a status other than 200, or with an empty body, contribute
// nothing. Any other failure fails the whole call.
func (c *Client) FetchConfig(ctx context.Context, req models.ConfigRequest) (*models.Configurations, error) {
	return c.configService.FetchConfig(ctx, req)
}

// CreateEnvFile writes cfgs to fileName as KEY=VALUE lines in insertion
// order. With clear set an existing file is removed first, otherwise the
// lines are appended.
func (c *Client) CreateEnvFile(ctx context.Context, fileName string, cfgs *models.Configurations, clear bool) error {
	return c.configService.CreateEnvFile(ctx, fileName, cfgs, clear)
}

// SetEnv loads fileName into the process environment. Variables that are
// already set keep their value.
func (c *Client) SetEnv(ctx context.Context, fileName string) error {
	return c.configService.SetEnv(ctx, fileName)
}

var defaultClient = sync.OnceValue(func() *Client {
	return New(Options{})
})

// FetchConfig calls [Client.FetchConfig] on a client built with zero
// [Options].
func FetchConfig(ctx context.Context, req models.ConfigRequest) (*models.Configurations, error) {
	return defaultClient().FetchConfig(ctx, req)
}

// CreateEnvFile calls [Client.CreateEnvFile] on a client built with zero
// [Options].
func CreateEnvFile(ctx context.Context, fileName string, cfgs *models.Configurations, clear bool) error {
	return defaultClient().CreateEnvFile(ctx, fileName, cfgs, clear)
}

// SetEnv calls [Client.SetEnv] on a client built with zero [Options].
func SetEnv(ctx context.Context, fileName string) error {
	return defaultClient().SetEnv(ctx, fileName)
}
