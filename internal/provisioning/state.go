package provisioning

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Populated by the fetch phase.
	FreshClone bool // true if the repository was cloned, false if an existing checkout was updated

	// Populated by the secrets phase.
	EnvFile string // path of the materialized secrets file

	// Populated by the dependencies phase.
	VenvDir string // virtualenv the service and migrations run out of

	// Populated by the datastore phase (postgres variant).
	DatabaseURL string // connection string written into the secrets file

	// Populated by the web phases.
	SiteFile string // installed reverse-proxy site configuration
	UnitFile string // installed process-manager unit
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
