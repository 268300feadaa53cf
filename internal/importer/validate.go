package importer

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/workcounter/internal/repository"
)

// ValidateStoreFile checks that f holds at least one ledger document and
// that every ledger document is a JSON object. All problems are reported.
func ValidateStoreFile(f StoreFile) []error {
	var errs []error

	found := 0
	for _, key := range repository.LedgerKeys {
		raw, ok := f[key]
		if !ok {
			continue
		}
		found++

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			errs = append(errs, fmt.Errorf("%s: expected an object", key))
		}
	}
	if found == 0 {
		errs = append(errs, fmt.Errorf("no workcounter data: expected one of %v", repository.LedgerKeys))
	}

	return errs
}
