package service

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/model"
)

// exportDocument is the archived JSON form of an export. Binary fields are
// base64 encoded by encoding/json.
type exportDocument struct {
	Conversation exportConversation `json:"conversation"`
	Count        int                `json:"count"`
	ExportedAt   time.Time          `json:"exportedAt"`
	Messages     []exportMessage    `json:"messages"`
}

type exportConversation struct {
	ID                uuid.UUID   `json:"id"`
	Type              string      `json:"type"`
	Participants      []uuid.UUID `json:"participants,omitempty"`
	TeamID            *uuid.UUID  `json:"teamId,omitempty"`
	RetentionPolicy   string      `json:"retentionPolicy"`
	EncryptionVersion int         `json:"encryptionVersion"`
	CreatedAt         time.Time   `json:"createdAt"`
}

type exportMessage struct {
	ID              uuid.UUID       `json:"id"`
	SenderID        uuid.UUID       `json:"senderId"`
	RecipientIDs    []uuid.UUID     `json:"recipients"`
	Ciphertext      []byte          `json:"ciphertext"`
	IV              []byte          `json:"iv"`
	AuthTag         []byte          `json:"authTag"`
	DerivedKeyID    *string         `json:"derivedKeyId,omitempty"`
	Metadata        json.RawMessage `json:"metadata"`
	RetentionPolicy string          `json:"retentionPolicy"`
	ExpiresAt       time.Time       `json:"expiresAt"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func newExportDocument(export model.Export) exportDocument {
	c := export.Conversation
	doc := exportDocument{
		Conversation: exportConversation{
			ID:                c.ID,
			Type:              string(c.Type),
			Participants:      c.Participants,
			TeamID:            c.TeamID,
			RetentionPolicy:   string(c.RetentionPolicy),
			EncryptionVersion: c.EncryptionVersion,
			CreatedAt:         c.CreatedAt,
		},
		Count:      export.Count,
		ExportedAt: export.ExportedAt,
		Messages:   make([]exportMessage, 0, len(export.Messages)),
	}

	for _, m := range export.Messages {
		metadata := m.Metadata
		if len(metadata) == 0 {
			metadata = json.RawMessage(`{}`)
		}
		doc.Messages = append(doc.Messages, exportMessage{
			ID:              m.ID,
			SenderID:        m.SenderID,
			RecipientIDs:    m.RecipientIDs,
			Ciphertext:      m.Ciphertext,
			IV:              m.IV,
			AuthTag:         m.AuthTag,
			DerivedKeyID:    m.DerivedKeyID,
			Metadata:        metadata,
			RetentionPolicy: string(m.RetentionPolicy),
			ExpiresAt:       m.ExpiresAt,
			CreatedAt:       m.CreatedAt,
		})
	}

	return doc
}
