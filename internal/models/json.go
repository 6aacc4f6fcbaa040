package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// List-valued fields are persisted as JSON text so the same schema works on
// Postgres and SQLite. Each list type keeps its element shape; opaque blobs
// are never accepted.

// StringList is an ordered list of free-text items (standup entries, meeting
// participant ids).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return jsonValue(l)
}

func (l *StringList) Scan(src interface{}) error {
	return jsonScan(src, l)
}

// ActionItem is a single structured action item extracted from a meeting.
type ActionItem struct {
	Title    string `json:"title"`
	Assignee string `json:"assignee,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
}

type ActionItemList []ActionItem

func (l ActionItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ActionItemList{}
	}
	return jsonValue(l)
}

func (l *ActionItemList) Scan(src interface{}) error {
	return jsonScan(src, l)
}

// Message is a single entry in a conversation transcript.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type MessageList []Message

func (l MessageList) Value() (driver.Value, error) {
	if l == nil {
		l = MessageList{}
	}
	return jsonValue(l)
}

func (l *MessageList) Scan(src interface{}) error {
	return jsonScan(src, l)
}

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src, dest interface{}) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
