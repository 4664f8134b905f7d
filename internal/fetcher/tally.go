package fetcher

import "fmt"

// Tally counts the outcomes of a run
type Tally struct {
	Total   int // Artists listed by the server
	Skipped int // Not due for a refresh
	Updated int // Refresh changed the external info timestamp
	Failed  int // Refresh request or response was unusable
}

// Unchanged returns the artists that were neither skipped nor updated.
// Failed refreshes are included.
func (t Tally) Unchanged() int {
	return t.Total - t.Updated - t.Skipped
}

// Summary returns the end-of-run report line.
func (t Tally) Summary() string {
	return fmt.Sprintf("Done! %d skipped, %d updated, %d unchanged", t.Skipped, t.Updated, t.Unchanged())
}
