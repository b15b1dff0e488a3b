package agents

import "strings"

// knownFields are the tracker API response keys a user may ask for by name.
var knownFields = []string{
	"AgentCode", "AgentName", "Status", "LastUpdatedOn", "Asterisk_Url",
	"AgentIP", "CallingCompany", "IsWFH", "IsCustAnswered", "Grade",
	"Context", "TLName", "VCCount", "VCConnectCount", "UniqueVCCount",
	"TotalCalls", "UniqueDials", "ConnectedDials", "TotalTalkTime",
	"OpenLeadCount", "Callableleads", "FutureCB",
}

// defaultFields are shown when the user names none.
var defaultFields = []string{
	"AgentName", "AgentCode", "Status", "ConnectedDials", "TotalTalkTime", "LastUpdatedOn",
}

// ParseFields picks the tracker fields mentioned in the text, falling back
// to the default projection.
func ParseFields(text string) []string {
	lower := strings.ToLower(text)
	var requested []string
	for _, field := range knownFields {
		if strings.Contains(lower, strings.ToLower(field)) {
			requested = append(requested, field)
		}
	}
	if len(requested) == 0 {
		return append([]string(nil), defaultFields...)
	}
	return requested
}

// statusWords maps user phrasing to tracker status values.
var statusWords = []struct {
	word   string
	status string
}{
	{"on pause", "PAUSE"},
	{"pause", "PAUSE"},
	{"busy", "BUSY"},
	{"idle", "IDLE"},
	{"available", "AVAILABLE"},
	{"ready", "READY"},
	{"oncall", "ONCALL"},
	{"on call", "ON CALL"},
	{"ringing", "RINGING"},
	{"tea", "TEA"},
	{"unavailable", "UNAVAILABLE"},
}

// ParseStatusFilters extracts the statuses the user asked about. Empty
// means "use the default active set".
func ParseStatusFilters(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	var statuses []string
	for _, m := range statusWords {
		if strings.Contains(lower, m.word) {
			if _, dup := seen[m.status]; !dup {
				seen[m.status] = struct{}{}
				statuses = append(statuses, m.status)
			}
		}
	}
	return statuses
}

// defaultActiveStatuses count as "active" when no explicit filter is given.
var defaultActiveStatuses = map[string]struct{}{
	"READY": {}, "AVAILABLE": {}, "IDLE": {}, "ONCALL": {}, "ON CALL": {}, "BUSY": {},
}

// ActiveStatus reports whether a tracker status counts as active.
func ActiveStatus(status string) bool {
	_, ok := defaultActiveStatuses[strings.ToUpper(status)]
	return ok
}
