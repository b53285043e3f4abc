package repository

import (
	"sort"
	"time"

	"github.com/edulane/tutorhub/internal/models"
	"github.com/edulane/tutorhub/internal/store"
)

// Messages manages conversations and the messages inside them, stored
// as two separate collections.
type Messages struct {
	convs store.Collection[models.Conversation]
	msgs  store.Collection[models.Message]
}

func NewMessages(s *store.Store) *Messages {
	return &Messages{
		convs: store.NewCollection[models.Conversation](s, "conversations"),
		msgs:  store.NewCollection[models.Message](s, "messages"),
	}
}

func (r *Messages) CreateConversation(participants []string) (models.Conversation, error) {
	c := models.Conversation{
		ID:           models.NewID("cnv"),
		Participants: participants,
		CreatedAt:    time.Now().UTC(),
	}
	if c.Participants == nil {
		c.Participants = []string{}
	}
	err := r.convs.Mutate(func(items []models.Conversation) ([]models.Conversation, error) {
		return append(items, c), nil
	})
	return c, err
}

func (r *Messages) GetConversation(id string) (*models.Conversation, error) {
	items, err := r.convs.All()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// ListConversations returns the conversations a user participates in,
// most recently active first.
func (r *Messages) ListConversations(userID string) ([]models.Conversation, error) {
	items, err := r.convs.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Conversation, 0, len(items))
	for _, c := range items {
		for _, p := range c.Participants {
			if p == userID {
				out = append(out, c)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out, nil
}

// Send appends a message and refreshes the conversation's
// LastMessageAt.
func (r *Messages) Send(m models.Message) (models.Message, error) {
	m.ID = models.NewID("msg")
	m.CreatedAt = time.Now().UTC()
	err := r.msgs.Mutate(func(items []models.Message) ([]models.Message, error) {
		return append(items, m), nil
	})
	if err != nil {
		return m, err
	}
	err = r.convs.Mutate(func(items []models.Conversation) ([]models.Conversation, error) {
		for i := range items {
			if items[i].ID == m.ConversationID {
				items[i].LastMessageAt = m.CreatedAt
				break
			}
		}
		return items, nil
	})
	return m, err
}

func (r *Messages) ListByConversation(conversationID string) ([]models.Message, error) {
	items, err := r.msgs.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Message, 0, len(items))
	for _, m := range items {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

// MarkRead marks every message in the conversation not sent by userID
// as read, returning how many changed.
func (r *Messages) MarkRead(conversationID, userID string) (int, error) {
	changed := 0
	err := r.msgs.Mutate(func(items []models.Message) ([]models.Message, error) {
		for i := range items {
			if items[i].ConversationID == conversationID && items[i].SenderID != userID && !items[i].Read {
				items[i].Read = true
				changed++
			}
		}
		return items, nil
	})
	return changed, err
}
