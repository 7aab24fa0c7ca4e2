package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cbodonnell/purgatorium/pkg/log"
	"github.com/cbodonnell/purgatorium/pkg/notes"
	"github.com/cbodonnell/purgatorium/pkg/queue"
	"github.com/cbodonnell/purgatorium/pkg/state"
	"github.com/gorilla/mux"
)

// maxMIDIValue bounds note numbers and key velocities accepted over the API.
const maxMIDIValue = 127

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func HandleGetSnapshot(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := stateManager.Get(r.Context())
		if err != nil {
			log.Error("failed to get world snapshot: %v", err)
			http.Error(w, "Failed to get world snapshot", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

func HandleGetBullet(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["bulletID"]
		snapshot, err := stateManager.Get(r.Context())
		if err != nil {
			log.Error("failed to get world snapshot: %v", err)
			http.Error(w, "Failed to get world snapshot", http.StatusInternalServerError)
			return
		}

		b, ok := snapshot.FindBullet(id)
		if !ok {
			http.Error(w, "Bullet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

// HandleSpawn queues a note for the game loop to turn into a bullet.
func HandleSpawn(spawnQueue queue.Queue[notes.Note]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		note := notes.Note{}
		if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
			http.Error(w, "Failed to decode note", http.StatusBadRequest)
			return
		}

		if note.MIDINumber < 0 || note.MIDINumber > maxMIDIValue {
			http.Error(w, "midi_number must be between 0 and 127", http.StatusBadRequest)
			return
		}
		if note.Velocity < 0 || note.Velocity > maxMIDIValue {
			http.Error(w, "velocity must be between 0 and 127", http.StatusBadRequest)
			return
		}

		if err := spawnQueue.Enqueue(note); err != nil {
			if errors.Is(err, queue.ErrQueueFull) {
				http.Error(w, "Spawn queue is full", http.StatusServiceUnavailable)
				return
			}
			log.Error("failed to enqueue note: %v", err)
			http.Error(w, "Failed to enqueue note", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusAccepted, note)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
