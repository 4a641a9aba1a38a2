package entities

// UpgradeContext is the single record threaded through an upgrade run.
// It is built once from the project manifests, enriched by each pipeline
// stage, and discarded when the run ends.
type UpgradeContext struct {
	AppName              string   // application name from the project manifest
	CurrentVersion       string   // installed framework version
	DeclaredVersion      string   // dependency range the manifest declares; empty when absent
	DeclaredReactVersion string   // declared peer dependency range; empty when absent
	CLIVersion           string   // user-requested target version; empty means "latest"
	CLIArgs              []string // extra arguments forwarded to the generator
	NewVersion           string   // resolved target version; set once after registry resolution
	TempRepositoryDir    string   // isolated git metadata directory; set once before any git operation
}
