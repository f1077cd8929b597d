package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// tempIDPrefix marks reply identifiers issued locally before the server has
// confirmed the write.
const tempIDPrefix = "tmp_"

// ReplyEntry is one message in a feedback item's reply thread. A reply starts
// life with a temporary local identifier and an optimistic marker; on server
// confirmation the temporary entry is replaced wholesale by the server copy.
type ReplyEntry struct {
	ID         string    `json:"id"`
	FeedbackID uuid.UUID `json:"feedbackId"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	Optimistic bool      `json:"optimistic,omitempty"`
}

// NewOptimisticReply builds the locally-identified entry inserted into the
// thread before the remote write settles.
func NewOptimisticReply(feedbackID uuid.UUID, author, content string) ReplyEntry {
	return ReplyEntry{
		ID:         tempIDPrefix + uuid.NewString(),
		FeedbackID: feedbackID,
		Author:     author,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
		Optimistic: true,
	}
}

// IsTemporary reports whether the entry still carries a locally-generated
// identifier.
func (r ReplyEntry) IsTemporary() bool {
	return strings.HasPrefix(r.ID, tempIDPrefix)
}
