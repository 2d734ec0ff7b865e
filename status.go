package main

type alarmStatus struct {
	ID      int    `json:"id"`
	Time    string `json:"time"`
	Date    string `json:"date,omitempty"`
	Enabled bool   `json:"enabled"`
}

// what the main loop last published, for the front panel
type clockStatus struct {
	Time         string        `json:"time"`
	Date         string        `json:"date"`
	DisplayIndex int           `json:"displayIndex"`
	Alarms       []alarmStatus `json:"alarms"`
}

func publishStatus(rt runtimeConfig) {
	st := rt.state
	status := &clockStatus{
		Time:         st.now().String(),
		Date:         st.date.String(),
		DisplayIndex: st.dispIndex,
	}
	for i := range st.alarms {
		a := &st.alarms[i]
		as := alarmStatus{ID: int(a.id), Time: a.time.String(), Enabled: a.enabled}
		if a.matchesDate() {
			as.Date = a.date.String()
		}
		status.Alarms = append(status.Alarms, as)
	}
	st.status.Store(status)
}
