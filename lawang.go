package lawang

import (
	"fmt"
	"time"

	"github.com/lborres/lawang/core"
	"github.com/lborres/lawang/pkg/crypto"
	"github.com/lborres/lawang/services"
)

// interfaces
type (
	CredentialStore = core.CredentialStore
	PasswordHandler = core.PasswordHandler
	TokenIssuer     = core.TokenIssuer

	HTTPAdapter = core.HTTPAdapter

	AuthProvider = core.AuthProvider
)

// structs
type (
	Lawang = core.Lawang
	Config = core.Config
)

type (
	Account       = core.Account
	Claims        = core.Claims
	AuthResult    = core.AuthResult
	RegisterInput = core.RegisterInput
	LoginInput    = core.LoginInput
)

const (
	defaultBasePath  = "/api"
	defaultTokenTTL  = 24 * time.Hour
	defaultSecretLen = 32
)

// Constructors & helpers (convenience re-exports)
var (
	NewArgon2      = crypto.NewArgon2
	NewAuthService = services.NewAuthService
)

var (
	ErrDuplicateEmail     = core.ErrDuplicateEmail
	ErrAccountNotFound    = core.ErrAccountNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
)

var (
	ErrMissingAuthHeader = core.ErrMissingAuthHeader
	ErrInvalidToken      = core.ErrInvalidToken
	ErrTokenExpired      = core.ErrTokenExpired
)

var (
	ErrUsernameRequired = core.ErrUsernameRequired
	ErrEmailRequired    = core.ErrEmailRequired
	ErrPasswordRequired = core.ErrPasswordRequired
	ErrPasswordTooShort = core.ErrPasswordTooShort
)

var (
	ErrDBAdapterRequired   = core.ErrDBAdapterRequired
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
	ErrSecretRequired      = core.ErrSecretRequired
	ErrSecretTooShort      = core.ErrSecretTooShort
)

func New(config Config) (*Lawang, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < defaultSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, defaultSecretLen)
	}
	if config.Database == nil {
		return nil, ErrDBAdapterRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	tokenTTL := config.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	auth := services.NewAuthService(
		config.Database,
		passwordHasher,
		crypto.NewJWT([]byte(config.Secret)),
		tokenTTL,
	)

	lawang := &Lawang{
		Auth:     auth,
		BasePath: basePath,
	}

	if err := config.HTTP.RegisterRoutes(lawang); err != nil {
		return nil, err
	}

	return lawang, nil
}
