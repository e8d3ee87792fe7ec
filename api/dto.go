/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"encoding/base64"

	"github.com/warp/shift-ledger/flow"
	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// MessageRequest is one inbound conversation message.
type MessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// ReplyDTO is one outbound reply. Chats other than the requesting one may
// appear when a command notifies them (user removal).
type ReplyDTO struct {
	ChatID   int64        `json:"chat_id"`
	Text     string       `json:"text"`
	Artifact *ArtifactDTO `json:"artifact,omitempty"`
}

// ArtifactDTO carries a rendered file inline, base64-encoded.
type ArtifactDTO struct {
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	Data     string `json:"data"`
}

// UserDTO is one roster member.
type UserDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toReplyDTOs(replies []flow.Reply) []ReplyDTO {
	dtos := make([]ReplyDTO, len(replies))
	for i, r := range replies {
		dtos[i] = ReplyDTO{ChatID: r.ChatID, Text: r.Text}
		if r.Artifact != nil {
			dtos[i].Artifact = &ArtifactDTO{
				Filename: r.Artifact.Filename,
				MIME:     r.Artifact.MIME,
				Data:     base64.StdEncoding.EncodeToString(r.Artifact.Data),
			}
		}
	}
	return dtos
}

func toUserDTOs(entries []shift.RosterEntry) []UserDTO {
	dtos := make([]UserDTO, len(entries))
	for i, e := range entries {
		dtos[i] = UserDTO{Code: string(e.Code), Name: e.Name}
	}
	return dtos
}
