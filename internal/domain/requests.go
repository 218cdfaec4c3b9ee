package domain

import "github.com/google/uuid"

type StartSessionRequest struct {
	GeneralLocation string `json:"general_location" validate:"required,max=256"`
	PreciseLocation string `json:"precise_location" validate:"max=512"`
}

type UpdateLocationRequest struct {
	GeneralLocation string `json:"general_location" validate:"required,max=256"`
	PreciseLocation string `json:"precise_location" validate:"max=512"`
}

type CreateAlertRequest struct {
	SessionID       *uuid.UUID `json:"session_id,omitempty"`
	GeneralLocation string     `json:"general_location" validate:"required,max=256"`
	PreciseLocation string     `json:"precise_location" validate:"max=512"`
}

type CancelResponseRequest struct {
	Reason string `json:"reason" validate:"required,cancel_reason"`
	Detail string `json:"detail" validate:"max=512"`
}

type EndResponseRequest struct {
	CalledAmbulance bool   `json:"called_ambulance"`
	PersonOkay      bool   `json:"person_okay"`
	NaloxoneUsed    bool   `json:"naloxone_used"`
	Notes           string `json:"notes" validate:"max=1024"`
}

type SetRolesRequest struct {
	IsResponder bool `json:"is_responder"`
	IsAdmin     bool `json:"is_admin"`
}
