package kernel

import (
	"log"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/thanzeeha/portfolio4/metal/env"
	"github.com/thanzeeha/portfolio4/pkg/auth"
	"github.com/thanzeeha/portfolio4/pkg/llogs"
	"github.com/thanzeeha/portfolio4/pkg/portal"
	"github.com/thanzeeha/portfolio4/remote"
	"github.com/thanzeeha/portfolio4/storage"
)

func MakeSentry(env *env.Environment) *portal.Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:   env.Sentry.DSN,
		Debug: env.App.IsLocal(),
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	options := sentryhttp.Options{}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

func MakeContentStore(env *env.Environment) *storage.Store {
	store, err := storage.MakeStore(env.Store.ContentFile)

	if err != nil {
		panic("storage: error preparing the content store: " + err.Error())
	}

	return store
}

// MakeVerifier picks the credential comparison strategy from the environment:
// a SHA-256 digest check when a hash is configured, plain constant-time
// equality otherwise.
func MakeVerifier(admin env.AdminEnvironment) auth.CredentialVerifier {
	if admin.UsesHash() {
		verifier, err := auth.MakeHashedVerifier(admin.PasswordHash)

		if err != nil {
			panic("auth: invalid admin password hash: " + err.Error())
		}

		return verifier
	}

	return auth.MakePlainVerifier(admin.Password)
}

// MakeRemoteStore builds the gateway's remote store client. It returns nil
// when no write credential is configured; the ingress handler reports that
// condition per request instead of failing boot.
func MakeRemoteStore(env *env.Environment) *remote.GithubStore {
	if !env.Remote.HasToken() {
		return nil
	}

	return remote.MakeGithubStore(
		portal.NewDefaultClient(nil),
		env.Remote.ApiURL,
		env.Remote.Token,
	)
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	app := env.AppEnvironment{
		Name:      env.GetEnvVar("ENV_APP_NAME"),
		URL:       env.GetEnvVar("ENV_APP_URL"),
		Type:      env.GetEnvVar("ENV_APP_ENV_TYPE"),
		MasterKey: env.GetEnvVar("ENV_APP_MASTER_KEY"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost:        env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort:        env.GetEnvVar("ENV_HTTP_PORT"),
		PublicAllowedIP: env.GetEnvVar("ENV_PUBLIC_ALLOWED_IP"),
		IsProduction:    app.IsProduction(), // --- only needed for validation purposes
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
		CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
	}

	pingEnv := env.PingEnvironment{
		Username: env.GetEnvVar("ENV_PING_USERNAME"),
		Password: env.GetEnvVar("ENV_PING_PASSWORD"),
	}

	adminEnv := env.AdminEnvironment{
		Password:     env.GetSecretOrEnv("admin_password", "ENV_ADMIN_PASSWORD"),
		PasswordHash: env.GetEnvVar("ENV_ADMIN_PASSWORD_SHA256"),
	}

	storeEnv := env.StoreEnvironment{
		ContentFile: env.GetEnvVar("ENV_CONTENT_FILE"),
	}

	remoteEnv := env.RemoteEnvironment{
		Owner:   env.GetEnvVar("ENV_REMOTE_OWNER"),
		Repo:    env.GetEnvVar("ENV_REMOTE_REPO"),
		Path:    env.GetEnvVar("ENV_REMOTE_PATH"),
		Branch:  env.GetEnvVar("ENV_REMOTE_BRANCH"),
		Message: env.GetEnvVar("ENV_REMOTE_MESSAGE"),
		ApiURL:  env.GetEnvVar("ENV_REMOTE_API_URL"),
		Token:   env.GetSecretOrEnv("github_token", "ENV_GITHUB_TOKEN"),
	}

	backupEnv := env.BackupEnvironment{
		Schedule: env.GetEnvVar("ENV_BACKUP_SCHEDULE"),
	}

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSuffix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(logsEnv); err != nil {
		panic(errorSuffix + "invalid [logs] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(netEnv); err != nil {
		panic(errorSuffix + "invalid [NETWORK] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sentryEnv); err != nil {
		panic(errorSuffix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(pingEnv); err != nil {
		panic(errorSuffix + "invalid [ping] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(adminEnv); err != nil {
		panic(errorSuffix + "invalid [ADMIN] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(storeEnv); err != nil {
		panic(errorSuffix + "invalid [STORE] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(remoteEnv); err != nil {
		panic(errorSuffix + "invalid [REMOTE] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(backupEnv); err != nil {
		panic(errorSuffix + "invalid [BACKUP] model: " + validate.GetErrorsAsJson())
	}

	environment := &env.Environment{
		App:     app,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Ping:    pingEnv,
		Admin:   adminEnv,
		Store:   storeEnv,
		Remote:  remoteEnv,
		Backup:  backupEnv,
		Tracing: *env.NewTracingEnvironment(),
	}

	if _, err := validate.Rejects(environment); err != nil {
		panic(errorSuffix + "invalid [portfolio] model: " + validate.GetErrorsAsJson())
	}

	return environment
}
