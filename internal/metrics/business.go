package metrics

// IncrementSlotsCreated increments the slot creation counter
func (m *Metrics) IncrementSlotsCreated() {
	m.safeExecute("IncrementSlotsCreated", func() {
		m.SlotsCreatedTotal.Inc()
	})
}

// IncrementMeetingsScheduled increments the meeting scheduling counter
func (m *Metrics) IncrementMeetingsScheduled() {
	m.safeExecute("IncrementMeetingsScheduled", func() {
		m.MeetingsScheduledTotal.Inc()
	})
}

// SetSlotsTotal sets the total slots gauge
func (m *Metrics) SetSlotsTotal(count int64) {
	m.safeExecute("SetSlotsTotal", func() {
		m.SlotsTotal.Set(float64(count))
	})
}

// SetMeetingsTotal sets the total meetings gauge
func (m *Metrics) SetMeetingsTotal(count int64) {
	m.safeExecute("SetMeetingsTotal", func() {
		m.MeetingsTotal.Set(float64(count))
	})
}

// SetUsersTotal sets the total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}
