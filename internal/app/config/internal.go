package config

type InternalConfig struct {
	App      App
	Identity AppIdentity
	Graph    AppGraph
}

type App struct {
	Env                        string
	Port                       string
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

// AppIdentity holds the client-credential grant inputs. They are read once
// at start-up and never mutated.
type AppIdentity struct {
	ClientID      string
	ClientSecret  string
	TenantID      string
	AuthorityHost string
}

type AppGraph struct {
	BaseUrl string
	Scope   string
}
