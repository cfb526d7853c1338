package internal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile name has no row.
var ErrProfileNotFound = errors.New("profile not found")

// Store provides access to profiles and their encrypted records.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Store over an open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetProfile loads a profile by name.
func (s *Store) GetProfile(name string) (*Profile, error) {
	row := s.db.QueryRow(
		`SELECT id, name, created_at, encryption_key FROM profiles WHERE name = ?`, name)

	var p Profile
	if err := row.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.Key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ProfileError{Name: name, Err: ErrProfileNotFound}
		}
		return nil, &StoreError{Op: "query", Err: err}
	}

	return &p, nil
}

// GetOrCreateProfile loads a profile by name, creating it with a fresh
// encryption key if it does not exist.
func (s *Store) GetOrCreateProfile(name string) (*Profile, error) {
	p, err := s.GetProfile(name)
	if err == nil {
		return p, nil
	}

	var perr *ProfileError
	if !errors.As(err, &perr) {
		return nil, err
	}

	key, err := NewEncryptionKey()
	if err != nil {
		return nil, err
	}

	p = &Profile{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
		Key:       key,
	}

	_, err = s.db.Exec(
		`INSERT INTO profiles (id, name, created_at, encryption_key) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.CreatedAt, p.Key)
	if err != nil {
		return nil, &StoreError{Op: "insert", Err: err}
	}

	LogInfo("Created profile %q (%s)", p.Name, p.ID)
	return p, nil
}

// ListProfiles returns all profiles ordered by creation time.
func (s *Store) ListProfiles() ([]*Profile, error) {
	rows, err := s.db.Query(
		`SELECT id, name, created_at, encryption_key FROM profiles ORDER BY created_at`)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.Key); err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}
		profiles = append(profiles, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}

	return profiles, nil
}

// AppendMessage encrypts and persists a chat message for the profile.
func (s *Store) AppendMessage(p *Profile, msg Message) error {
	body, err := Encrypt(msg.Text, p.Key)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO messages (id, profile_id, body, sender, mood, created_at, encrypted)
		 VALUES (?, ?, ?, ?, ?, ?, 1)`,
		msg.ID, p.ID, body, string(msg.Sender), msg.Mood, msg.Timestamp)
	if err != nil {
		return &StoreError{Op: "insert", Err: err}
	}

	return nil
}

// LoadHistory returns the profile's full message history in insertion
// order, with bodies decrypted. Rows that fail to decrypt are skipped
// rather than failing the whole load.
func (s *Store) LoadHistory(p *Profile) ([]Message, error) {
	rows, err := s.db.Query(
		`SELECT id, body, sender, mood, created_at, encrypted
		 FROM messages WHERE profile_id = ? ORDER BY created_at, id`, p.ID)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var (
			msg       Message
			body      string
			sender    string
			encrypted int
		)
		if err := rows.Scan(&msg.ID, &body, &sender, &msg.Mood, &msg.Timestamp, &encrypted); err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}

		if encrypted == 1 {
			text, err := Decrypt(body, p.Key)
			if err != nil {
				LogWarn("Skipping undecryptable message %s: %v", msg.ID, err)
				continue
			}
			msg.Text = text
			msg.Encrypted = true
		} else {
			msg.Text = body
		}

		msg.Sender = Sender(sender)
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}

	return messages, nil
}

// LoadConversation loads the full history wrapped for export.
func (s *Store) LoadConversation(p *Profile) (*Conversation, error) {
	messages, err := s.LoadHistory(p)
	if err != nil {
		return nil, err
	}

	return &Conversation{
		ProfileID:   p.ID,
		ProfileName: p.Name,
		Messages:    messages,
		ExportedAt:  time.Now(),
	}, nil
}

// SaveMoodEntry encrypts and persists a mood check-in.
func (s *Store) SaveMoodEntry(p *Profile, entry MoodEntry) error {
	if entry.Mood < 1 || entry.Mood > 10 {
		return &StoreError{Op: "insert", Err: fmt.Errorf("mood must be 1-10, got %d", entry.Mood)}
	}

	note, err := Encrypt(entry.Note, p.Key)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO mood_entries (id, profile_id, mood, note, created_at, encrypted)
		 VALUES (?, ?, ?, ?, ?, 1)`,
		entry.ID, p.ID, entry.Mood, note, entry.Timestamp)
	if err != nil {
		return &StoreError{Op: "insert", Err: err}
	}

	return nil
}

// LoadMoodEntries returns the profile's mood check-ins, oldest first.
func (s *Store) LoadMoodEntries(p *Profile) ([]MoodEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, mood, note, created_at FROM mood_entries
		 WHERE profile_id = ? ORDER BY created_at, id`, p.ID)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	var entries []MoodEntry
	for rows.Next() {
		var (
			entry MoodEntry
			note  string
		)
		if err := rows.Scan(&entry.ID, &entry.Mood, &note, &entry.Timestamp); err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}

		text, err := Decrypt(note, p.Key)
		if err != nil {
			LogWarn("Skipping undecryptable mood entry %s: %v", entry.ID, err)
			continue
		}

		entry.Note = text
		entry.ProfileID = p.ID
		entry.Encrypted = true
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}

	return entries, nil
}

// SaveJournalEntry encrypts and persists a journal entry.
func (s *Store) SaveJournalEntry(p *Profile, entry JournalEntry) error {
	body, err := Encrypt(entry.Content, p.Key)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO journal_entries (id, profile_id, body, created_at, encrypted)
		 VALUES (?, ?, ?, ?, 1)`,
		entry.ID, p.ID, body, entry.Timestamp)
	if err != nil {
		return &StoreError{Op: "insert", Err: err}
	}

	return nil
}

// LoadJournalEntries returns the profile's journal entries, oldest first.
func (s *Store) LoadJournalEntries(p *Profile) ([]JournalEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, body, created_at FROM journal_entries
		 WHERE profile_id = ? ORDER BY created_at, id`, p.ID)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var (
			entry JournalEntry
			body  string
		)
		if err := rows.Scan(&entry.ID, &body, &entry.Timestamp); err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}

		text, err := Decrypt(body, p.Key)
		if err != nil {
			LogWarn("Skipping undecryptable journal entry %s: %v", entry.ID, err)
			continue
		}

		entry.Content = text
		entry.ProfileID = p.ID
		entry.Encrypted = true
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}

	return entries, nil
}

// RecordSession persists an activity session record.
func (s *Store) RecordSession(p *Profile, rec SessionRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, profile_id, type, duration, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, p.ID, string(rec.Type), rec.Duration, rec.Timestamp)
	if err != nil {
		return &StoreError{Op: "insert", Err: err}
	}

	return nil
}

// LoadSessions returns the profile's session records, oldest first.
func (s *Store) LoadSessions(p *Profile) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, type, duration, created_at FROM sessions
		 WHERE profile_id = ? ORDER BY created_at, id`, p.ID)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			rec SessionRecord
			typ string
		)
		if err := rows.Scan(&rec.ID, &typ, &rec.Duration, &rec.Timestamp); err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}
		rec.ProfileID = p.ID
		rec.Type = SessionType(typ)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}

	return records, nil
}

// UnlockedBadgeIDs returns the set of badge ids already unlocked.
func (s *Store) UnlockedBadgeIDs(p *Profile) (map[string]time.Time, error) {
	rows, err := s.db.Query(
		`SELECT badge_id, unlocked_at FROM badges WHERE profile_id = ?`, p.ID)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	unlocked := make(map[string]time.Time)
	for rows.Next() {
		var (
			id string
			at time.Time
		)
		if err := rows.Scan(&id, &at); err != nil {
			return nil, &StoreError{Op: "query", Err: err}
		}
		unlocked[id] = at
	}

	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}

	return unlocked, nil
}

// SaveBadge records a newly unlocked badge. Re-saving an unlocked badge
// is a no-op.
func (s *Store) SaveBadge(p *Profile, badge Badge) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO badges (profile_id, badge_id, unlocked_at) VALUES (?, ?, ?)`,
		p.ID, badge.ID, badge.UnlockedAt)
	if err != nil {
		return &StoreError{Op: "insert", Err: err}
	}

	return nil
}
