package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVisitAppendsLine(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	c := NewConsumer("amqp://unused", dir)

	ev := VisitRequestedEvent{
		ListingID:     "6",
		ListingTitle:  "Scenic Plot Near Lake",
		OwnerName:     "Owner",
		VisitorName:   "Visitor",
		VisitorPhone:  "+91 1",
		VisitorEmail:  "v@example.com",
		PreferredDate: "2024-03-01",
		PreferredTime: "10:00",
		RequestedAt:   "2024-02-01T00:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, c.HandleVisit(body))
	require.NoError(t, c.HandleVisit(body))

	data, err := os.ReadFile(filepath.Join(dir, "visits.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "listing_id=6")
	assert.Contains(t, lines[0], `listing="Scenic Plot Near Lake"`)
	assert.Contains(t, lines[0], `when="2024-03-01" "10:00"`)
}

func TestHandleContactAppendsLine(t *testing.T) {
	dir := t.TempDir()
	c := NewConsumer("amqp://unused", dir)

	body, err := json.Marshal(ContactSubmittedEvent{Name: "A", Email: "a@example.com", Subject: "other", Message: "multi\nline", SubmittedAt: "t"})
	require.NoError(t, err)
	require.NoError(t, c.HandleContact(body))

	data, err := os.ReadFile(filepath.Join(dir, "contact.log"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"), "message newlines are escaped")
	assert.Contains(t, string(data), `subject="other"`)
}

func TestFormattedLinesEscapeContactFields(t *testing.T) {
	forged := "+91 1\n[2024-01-01T00:00:00Z] Visit requested | listing_id=1"
	visit := FormatVisit(VisitRequestedEvent{
		ListingID:    "1",
		VisitorPhone: forged,
		VisitorEmail: "v@example.com\r\nx",
	})
	assert.Equal(t, 1, strings.Count(visit, "\n"))
	assert.True(t, strings.HasSuffix(visit, "\n"))
	assert.Contains(t, visit, `phone="+91 1\n[2024-01-01T00:00:00Z]`)

	contact := FormatContact(ContactSubmittedEvent{Phone: forged, Email: "a@example.com\nx", Subject: "other\nx"})
	assert.Equal(t, 1, strings.Count(contact, "\n"))
	assert.Contains(t, contact, `email="a@example.com\nx"`)
}

func TestHandleRejectsMalformedBody(t *testing.T) {
	c := NewConsumer("amqp://unused", t.TempDir())
	assert.Error(t, c.HandleVisit([]byte("{")))
	assert.Error(t, c.HandleContact([]byte("nope")))
}

func TestNextBackoff(t *testing.T) {
	d := minBackoff
	var seen []time.Duration
	for i := 0; i < 7; i++ {
		d = nextBackoff(d)
		seen = append(seen, d)
	}
	assert.Equal(t, []time.Duration{
		2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second,
		30 * time.Second, 30 * time.Second, 30 * time.Second,
	}, seen)
}
