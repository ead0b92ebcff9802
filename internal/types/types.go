// Package types defines the data model shared across goldcheck:
// deployment roles, golden-value expectations, and check results.
package types

// Status classifies the outcome of a single configuration check.
type Status string

// Status values. A result starts at StatusUnknown and is assigned exactly
// once during the check pass; dry runs leave every result at StatusUnknown.
const (
	StatusOK       Status = "OK"       // actual value present and equal to expected
	StatusMismatch Status = "MISMATCH" // actual value present but not equal
	StatusMissing  Status = "MISSING"  // stanza data returned but setting absent
	StatusError    Status = "ERROR"    // backend returned no data for the config file
	StatusUnknown  Status = "UNKNOWN"  // check not run yet
)

// AllStatuses lists every status in summary display order.
var AllStatuses = []Status{StatusOK, StatusMismatch, StatusMissing, StatusError, StatusUnknown}

// Role identifies a Splunk deployment archetype. Roles classify
// expectations and group results; they carry no behavior.
type Role string

// Known deployment roles.
const (
	RoleSearchHead         Role = "search-head"
	RoleIndexer            Role = "indexer"
	RoleClusterManager     Role = "cluster-manager"
	RoleSHCDeployer        Role = "shc-deployer"
	RoleHTTPEventCollector Role = "http-event-collector"
)

// RoleMarker pairs a role with the marker token used in golden documents
// (###BEGIN <Marker>### ... ###END###).
type RoleMarker struct {
	Marker string
	Role   Role
}

// RoleMarkers lists the begin-marker tokens in recognition order.
// The HTTP Event Collector marker preserves the misspelling found in
// golden documents already in circulation.
var RoleMarkers = []RoleMarker{
	{"SEARCH HEADS", RoleSearchHead},
	{"INDEXERS", RoleIndexer},
	{"CLUSTER MANAGER", RoleClusterManager},
	{"SHC DEPLOYER", RoleSHCDeployer},
	{"HTTP EVENT COLLECTOR RECEVIER INSTANCE", RoleHTTPEventCollector},
}

// AllRoles returns the known roles in marker order.
func AllRoles() []Role {
	roles := make([]Role, 0, len(RoleMarkers))
	for _, rm := range RoleMarkers {
		roles = append(roles, rm.Role)
	}
	return roles
}

// ParseRole maps a CLI role name to its Role. The second return value
// reports whether the name is known.
func ParseRole(name string) (Role, bool) {
	for _, rm := range RoleMarkers {
		if string(rm.Role) == name {
			return rm.Role, true
		}
	}
	return "", false
}

// Expectation is one declared golden rule: for a given role, config file,
// and stanza, a setting must hold the expected value. Expectations are
// immutable after parsing; duplicates targeting the same key are preserved
// and checked independently.
type Expectation struct {
	Role          Role   `json:"role" yaml:"role"`
	ConfigFile    string `json:"config_file" yaml:"config_file"`
	Stanza        string `json:"stanza" yaml:"stanza"`
	Setting       string `json:"setting" yaml:"setting"`
	ExpectedValue string `json:"expected_value" yaml:"expected_value"`
}

// CheckResult is an Expectation enriched with the resolved actual value
// and a status. The expectation fields are inherited verbatim.
// ActualValue is nil when the backend returned no data or the setting
// was absent.
type CheckResult struct {
	Role          Role    `json:"role" yaml:"role"`
	ConfigFile    string  `json:"config_file" yaml:"config_file"`
	Stanza        string  `json:"stanza" yaml:"stanza"`
	Setting       string  `json:"setting" yaml:"setting"`
	ExpectedValue string  `json:"expected_value" yaml:"expected_value"`
	ActualValue   *string `json:"actual_value" yaml:"actual_value"`
	Status        Status  `json:"status" yaml:"status"`
}

// NewCheckResult creates an unchecked result from an expectation.
func NewCheckResult(exp Expectation) CheckResult {
	return CheckResult{
		Role:          exp.Role,
		ConfigFile:    exp.ConfigFile,
		Stanza:        exp.Stanza,
		Setting:       exp.Setting,
		ExpectedValue: exp.ExpectedValue,
		Status:        StatusUnknown,
	}
}

// RoleGroup holds the results for one role, in check order.
type RoleGroup struct {
	Role    string        `json:"role"`
	Results []CheckResult `json:"results"`
}

// Summary counts results per status. Every status key is present even
// when its count is zero.
type Summary map[Status]int

// NewSummary returns a Summary with all five status keys at zero.
func NewSummary() Summary {
	s := make(Summary, len(AllStatuses))
	for _, st := range AllStatuses {
		s[st] = 0
	}
	return s
}

// Total returns the sum of all status counts.
func (s Summary) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}
