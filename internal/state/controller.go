package state

// RequestID tags one refresh. IDs increase monotonically per Controller.
type RequestID uint64

// Stats counts refresh outcomes for the lifetime of a Controller.
type Stats struct {
	Attempts  int
	Successes int
	Failures  int
	Stale     int // results dropped because a newer refresh had started
}

// Controller owns the FetchState of one screen. It is not safe for
// concurrent use; callers serialize access (Bubble Tea's Update loop does).
type Controller struct {
	state  FetchState
	latest RequestID
	stats  Stats
}

// NewController returns a Controller in the Idle state.
func NewController() *Controller {
	return &Controller{}
}

// State returns a snapshot of the current state.
func (c *Controller) State() FetchState { return c.state }

// Stats returns outcome counters.
func (c *Controller) Stats() Stats { return c.stats }

// Latest returns the id of the most recently started refresh, 0 if none.
func (c *Controller) Latest() RequestID { return c.latest }

// Loading reports whether the latest refresh has not settled yet.
func (c *Controller) Loading() bool { return c.state.Status == Loading }

// Begin starts a refresh and returns its id. Any refresh still in flight
// becomes stale: its result will be dropped by Settle.
func (c *Controller) Begin() RequestID {
	c.latest++
	c.stats.Attempts++
	c.state.Status = Loading
	c.state.Value = ""
	c.state.Err = nil
	return c.latest
}

// Settle applies the outcome of refresh id. Outcomes of any refresh other
// than the latest are dropped and Settle returns false. An applied settle
// always leaves the Loading status.
func (c *Controller) Settle(id RequestID, value string, err error) bool {
	if id == 0 || id != c.latest || c.state.Status != Loading {
		c.stats.Stale++
		return false
	}

	if err != nil {
		c.stats.Failures++
		c.state = FetchState{Status: Failed, Err: err, LastGood: c.state.LastGood}
		return true
	}

	c.stats.Successes++
	c.state = FetchState{Status: Loaded, Value: value, LastGood: value}
	return true
}
