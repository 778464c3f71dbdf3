package store

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/remtui/rem/internal/reminders"
)

// Field and record separators for osascript output. Unit separators survive
// free-text notes, which commas and newlines do not.
const (
	fieldSep  = ""
	recordSep = ""
)

// Script is the osascript-backed store. Each call runs one AppleScript
// program against the Reminders application.
type Script struct {
	binary string
}

// NewScript returns a store that shells out to osascript.
func NewScript() *Script {
	return &Script{binary: "osascript"}
}

func (s *Script) run(ctx context.Context, program string) (string, error) {
	cmd := exec.CommandContext(ctx, s.binary, "-e", program)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("osascript: %s", msg)
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

const collectionsScript = `
set fs to character id 31
set rs to character id 30
set out to ""
tell application "Reminders"
	repeat with l in lists
		set out to out & (id of l) & fs & (name of l) & fs & "#1E6FFF" & fs & (count of reminders of l) & rs
	end repeat
end tell
return out`

// Collections fetches every reminder list.
func (s *Script) Collections(ctx context.Context) ([]reminders.Collection, error) {
	raw, err := s.run(ctx, collectionsScript)
	if err != nil {
		return nil, err
	}
	return parseCollections(raw)
}

func itemsScript(collectionID string) string {
	return fmt.Sprintf(`
set fs to character id 31
set rs to character id 30
set out to ""
tell application "Reminders"
	set l to first list whose id is %q
	repeat with r in reminders of l
		set noteText to ""
		try
			set noteText to body of r
		end try
		set dueText to ""
		try
			set dueText to (due date of r) as text
		end try
		set out to out & (id of r) & fs & (name of r) & fs & noteText & fs & (completed of r) & fs & (priority of r) & fs & dueText & rs
	end repeat
end tell
return out`, collectionID)
}

// Items fetches the reminders of one list.
func (s *Script) Items(ctx context.Context, collectionID string) ([]reminders.Item, error) {
	raw, err := s.run(ctx, itemsScript(collectionID))
	if err != nil {
		return nil, err
	}
	return parseItems(raw)
}

const allItemsScript = `
set fs to character id 31
set rs to character id 30
set out to ""
tell application "Reminders"
	repeat with l in lists
		set listName to name of l
		repeat with r in reminders of l
			set noteText to ""
			try
				set noteText to body of r
			end try
			set dueText to ""
			try
				set dueText to (due date of r) as text
			end try
			set out to out & (id of r) & fs & (name of r) & fs & noteText & fs & (completed of r) & fs & (priority of r) & fs & dueText & fs & listName & rs
		end repeat
	end repeat
end tell
return out`

// AllItems fetches every reminder together with its list name.
func (s *Script) AllItems(ctx context.Context) ([]reminders.GlobalEntry, error) {
	raw, err := s.run(ctx, allItemsScript)
	if err != nil {
		return nil, err
	}
	return parseGlobal(raw)
}

// Toggle flips the completed flag of one reminder.
func (s *Script) Toggle(ctx context.Context, itemID string) error {
	_, err := s.run(ctx, fmt.Sprintf(`
tell application "Reminders"
	set r to first reminder whose id is %q
	set completed of r to not (completed of r)
end tell`, itemID))
	return err
}

// Delete removes one reminder.
func (s *Script) Delete(ctx context.Context, itemID string) error {
	_, err := s.run(ctx, fmt.Sprintf(`
tell application "Reminders"
	delete (first reminder whose id is %q)
end tell`, itemID))
	return err
}

// Create adds a reminder to the list named by item.CollectionID.
func (s *Script) Create(ctx context.Context, item reminders.NewItem) error {
	props := []string{fmt.Sprintf("name:%q", item.Title)}
	if item.Notes != "" {
		props = append(props, fmt.Sprintf("body:%q", item.Notes))
	}
	if item.Priority > 0 {
		props = append(props, fmt.Sprintf("priority:%d", item.Priority))
	}
	program := fmt.Sprintf(`
tell application "Reminders"
	set l to first list whose id is %q
	make new reminder at end of reminders of l with properties {%s}
end tell`, item.CollectionID, strings.Join(props, ", "))
	_, err := s.run(ctx, program)
	return err
}

// Permission probes reminder access. osascript has no direct authorization
// query, so a trivial read is attempted: a privacy refusal (error -1743)
// reads as denied, success as authorized.
func (s *Script) Permission(ctx context.Context) (Permission, error) {
	_, err := s.run(ctx, `tell application "Reminders" to count of lists`)
	if err == nil {
		return PermissionAuthorized, nil
	}
	if strings.Contains(err.Error(), "-1743") {
		return PermissionDenied, nil
	}
	return PermissionNotDetermined, err
}

func parseCollections(raw string) ([]reminders.Collection, error) {
	var out []reminders.Collection
	for _, record := range splitRecords(raw) {
		fields := strings.Split(record, fieldSep)
		if len(fields) != 4 {
			return nil, fmt.Errorf("malformed collection record %q", record)
		}
		count, err := strconv.ParseUint(fields[3], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("collection count %q: %w", fields[3], err)
		}
		out = append(out, reminders.Collection{
			ID:    fields[0],
			Name:  fields[1],
			Color: fields[2],
			Count: uint32(count),
		})
	}
	return out, nil
}

func parseItems(raw string) ([]reminders.Item, error) {
	var out []reminders.Item
	for _, record := range splitRecords(raw) {
		item, err := parseItemFields(strings.Split(record, fieldSep), 6)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func parseGlobal(raw string) ([]reminders.GlobalEntry, error) {
	var out []reminders.GlobalEntry
	for _, record := range splitRecords(raw) {
		fields := strings.Split(record, fieldSep)
		item, err := parseItemFields(fields, 7)
		if err != nil {
			return nil, err
		}
		out = append(out, reminders.GlobalEntry{Item: item, CollectionName: fields[6]})
	}
	return out, nil
}

func parseItemFields(fields []string, want int) (reminders.Item, error) {
	if len(fields) != want {
		return reminders.Item{}, fmt.Errorf("malformed reminder record: %d fields, want %d", len(fields), want)
	}
	priority, err := strconv.Atoi(fields[4])
	if err != nil {
		return reminders.Item{}, fmt.Errorf("reminder priority %q: %w", fields[4], err)
	}
	due := fields[5]
	if due == "missing value" {
		due = ""
	}
	return reminders.Item{
		ID:        fields[0],
		Title:     fields[1],
		Notes:     fields[2],
		Completed: fields[3] == "true",
		Priority:  reminders.ClampPriority(priority),
		DueDate:   due,
	}, nil
}

func splitRecords(raw string) []string {
	var out []string
	for _, record := range strings.Split(raw, recordSep) {
		if strings.TrimSpace(record) == "" {
			continue
		}
		out = append(out, record)
	}
	return out
}
