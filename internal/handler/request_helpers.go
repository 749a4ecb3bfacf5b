package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/domain"
)

// StatsPayload carries a battler's allocated stats over the wire.
// Focus power is the derived aggregate the combat math runs on; the
// individual stats shape opponent generation.
type StatsPayload struct {
	Health     int `json:"health" validate:"required,min=1,max=1000000"`
	Attack     int `json:"attack" validate:"required,min=1,max=1000000"`
	Defense    int `json:"defense" validate:"required,min=1,max=1000000"`
	Speed      int `json:"speed" validate:"required,min=1,max=1000000"`
	FocusPower int `json:"focus_power" validate:"required,min=1,max=4000000"`
}

func (p StatsPayload) toDomain() domain.BattlerStats {
	return domain.BattlerStats{
		Health:     p.Health,
		Attack:     p.Attack,
		Defense:    p.Defense,
		Speed:      p.Speed,
		FocusPower: p.FocusPower,
	}
}

// decodeAndValidate decodes a JSON body and runs struct validation,
// writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}
	if err := GetValidator().ValidateStruct(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  ErrMsgInvalidRequest,
			"fields": FormatValidationError(err),
		})
		return false
	}
	return true
}

// userIDFromQuery extracts and parses the user_id query parameter,
// writing the error response itself on failure.
func userIDFromQuery(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "user_id"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, "user_id"))
		return uuid.Nil, false
	}
	return id, true
}

// statsFromQuery builds battler stats from query parameters, writing
// the error response itself on failure.
func statsFromQuery(w http.ResponseWriter, r *http.Request) (domain.BattlerStats, bool) {
	var stats domain.BattlerStats
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"health", &stats.Health},
		{"attack", &stats.Attack},
		{"defense", &stats.Defense},
		{"speed", &stats.Speed},
		{"focus_power", &stats.FocusPower},
	} {
		raw := r.URL.Query().Get(f.name)
		if raw == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, f.name))
			return stats, false
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, f.name))
			return stats, false
		}
		*f.dst = v
	}
	return stats, true
}
