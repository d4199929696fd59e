package ws

import (
	"encoding/json"
	"log"
	"time"
)

// ProgressEvent is the JSON payload broadcast for each assembly step.
type ProgressEvent struct {
	Event    string `json:"event"`
	Category string `json:"category,omitempty"`
	Year     int    `json:"year,omitempty"`
	Index    int    `json:"index,omitempty"`
	Total    int    `json:"total,omitempty"`
	Rows     int    `json:"rows,omitempty"`
	Error    string `json:"error,omitempty"`
	At       string `json:"at"`
}

// Reporter bridges assembly progress callbacks onto the hub.
type Reporter struct {
	hub *Hub
}

// NewReporter creates a reporter broadcasting to hub.
func NewReporter(hub *Hub) *Reporter {
	return &Reporter{hub: hub}
}

func (r *Reporter) emit(ev ProgressEvent) {
	ev.At = time.Now().UTC().Format(time.RFC3339)
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[ws] marshal progress event: %v", err)
		return
	}
	r.hub.Broadcast(payload)
}

func (r *Reporter) OnSeasonStart(category string, year, index, total int) {
	r.emit(ProgressEvent{Event: "season_start", Category: category, Year: year, Index: index, Total: total})
}

func (r *Reporter) OnSeasonDone(category string, year, rows int) {
	r.emit(ProgressEvent{Event: "season_done", Category: category, Year: year, Rows: rows})
}

func (r *Reporter) OnJobError(err error) {
	r.emit(ProgressEvent{Event: "job_error", Error: err.Error()})
}

func (r *Reporter) OnJobComplete(rows int) {
	r.emit(ProgressEvent{Event: "job_complete", Rows: rows})
}
