package service

// brokerageOffices maps office MLS ids to list_office_key values. The
// mls_offices table doesn't carry these records, so the keys are kept
// here and loaded once at startup as process-wide immutable data. The
// (mls_name, list_office_key) index makes these the fast query path.
var brokerageOffices = map[string]string{
	"PRSG01": "f9ade7bc6f5509b67ac0776d255d46dc",
}

// DefaultOfficeMLSIDs is the full set of brokerage-owned office ids,
// used when a filter doesn't scope offices explicitly.
var DefaultOfficeMLSIDs = func() []string {
	ids := make([]string, 0, len(brokerageOffices))
	for id := range brokerageOffices {
		ids = append(ids, id)
	}
	return ids
}()

// resolveOfficeKeys maps office MLS ids through the static table,
// silently dropping ids with no mapping.
func resolveOfficeKeys(officeMLSIDs []string) []string {
	keys := make([]string, 0, len(officeMLSIDs))
	for _, id := range officeMLSIDs {
		if key, ok := brokerageOffices[id]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}
