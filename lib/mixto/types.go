package mixto

import "encoding/json"

// Commit types accepted by the server.
const (
	CommitTypeDump      = "dump"
	CommitTypeScript    = "script"
	CommitTypeTool      = "tool"
	CommitTypeStdout    = "stdout"
	CommitTypeURL       = "url"
	CommitTypeAsciinema = "asciinema"
	CommitTypeFile      = "file"
	CommitTypeImage     = "image"
)

// Entry categories accepted by the server.
var EntryCategories = []string{
	"android", "cloud", "crypto", "firmware", "forensics", "hardware",
	"ios", "misc", "network", "password", "pcap", "pwn", "reversing",
	"stego", "web", "none", "other", "scripting",
}

// Notice priorities accepted by the server.
var NoticeTypes = []string{"info", "done", "high", "medium", "low", "default"}

// Comment is a comment on a commit, and doubles as the shape of entry
// descriptions and notices.
type Comment struct {
	Text        string `json:"text,omitempty"`
	EntryID     string `json:"entry_id,omitempty"`
	CommentID   string `json:"comment_id,omitempty"`
	CommitID    string `json:"commit_id,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Username    string `json:"username,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	TimeCreated int64  `json:"time_created,omitempty"`
	TimeUpdated int64  `json:"time_updated,omitempty"`
}

// Note is a per-user note attached to an entry.
type Note struct {
	NotesID     string `json:"notes_id,omitempty"`
	EntryID     string `json:"entry_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Text        string `json:"text,omitempty"`
	Username    string `json:"username,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	TimeCreated int64  `json:"time_created,omitempty"`
	TimeUpdated int64  `json:"time_updated,omitempty"`
}

// FileMeta describes the file behind a file or image commit.
type FileMeta struct {
	FileName     string `json:"file_name,omitempty"`
	Hash         string `json:"hash,omitempty"`
	Mime         string `json:"mime,omitempty"`
	Size         int64  `json:"size,omitempty"`
	SlackChannel string `json:"slack_channel,omitempty"`
	SlackTS      string `json:"slack_ts,omitempty"`
}

// Commit is a unit of data added to an entry.
type Commit struct {
	CommitID    string    `json:"commit_id,omitempty"`
	EntryID     string    `json:"entry_id,omitempty"`
	Type        string    `json:"type,omitempty"`
	Title       string    `json:"title,omitempty"`
	Data        string    `json:"data,omitempty"`
	Marked      bool      `json:"marked,omitempty"`
	Locked      bool      `json:"locked,omitempty"`
	Username    string    `json:"username,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	TimeCreated int64     `json:"time_created,omitempty"`
	TimeUpdated int64     `json:"time_updated,omitempty"`
	Comments    []Comment `json:"comments,omitempty"`
	Meta        *FileMeta `json:"meta,omitempty"`
}

// Entry is a single item of work inside a workspace.
type Entry struct {
	EntryID     string   `json:"entry_id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Workspace   string   `json:"workspace,omitempty"`
	Category    string   `json:"category,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Username    string   `json:"username,omitempty"`
	Avatar      string   `json:"avatar,omitempty"`
	TimeCreated int64    `json:"time_created,omitempty"`
	TimeUpdated int64    `json:"time_updated,omitempty"`
	Commits     []Commit `json:"commits,omitempty"`
	Description *Comment `json:"description,omitempty"`
	Notice      *Comment `json:"notice,omitempty"`
	Notes       []Note   `json:"notes,omitempty"`
}

// Workspace summarizes a workspace and its counters.
type Workspace struct {
	WorkspaceID  string `json:"workspace_id,omitempty"`
	Workspace    string `json:"workspace,omitempty"`
	Description  string `json:"description,omitempty"`
	Private      bool   `json:"private,omitempty"`
	Locked       bool   `json:"locked,omitempty"`
	Imported     bool   `json:"imported,omitempty"`
	EntriesCount int    `json:"entries_count,omitempty"`
	CommitsCount int    `json:"commits_count,omitempty"`
	FlagsCount   int    `json:"flags_count,omitempty"`
	Username     string `json:"username,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	TimeCreated  int64  `json:"time_created,omitempty"`
	TimeUpdated  int64  `json:"time_updated,omitempty"`
}

// UserInfo is the calling user's profile. APIKey is only populated by
// the key reset operation.
type UserInfo struct {
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
}

// ServerVersion reports the server build.
type ServerVersion struct {
	Version    string `json:"Version,omitempty"`
	BuildDate  string `json:"BuildDate,omitempty"`
	GitCommit  string `json:"GitCommit,omitempty"`
	GitBranch  string `json:"GitBranch,omitempty"`
	Debug      bool   `json:"Debug,omitempty"`
	Production bool   `json:"Production,omitempty"`
}

// ValidDataTypes lists the category, commit type and priority values the
// server accepts.
type ValidDataTypes struct {
	Categories []string `json:"categories"`
	Types      []string `json:"types"`
	Priorities []string `json:"priorities"`
}

// SearchHit is a single full-text search result.
type SearchHit struct {
	ID          string   `json:"id,omitempty"`
	EntryID     string   `json:"entry_id,omitempty"`
	EntryTitle  string   `json:"entry_title,omitempty"`
	EntryTags   []string `json:"entry_tags,omitempty"`
	Title       string   `json:"title,omitempty"`
	Type        string   `json:"type,omitempty"`
	Category    string   `json:"category,omitempty"`
	Data        string   `json:"data,omitempty"`
	Workspace   string   `json:"workspace,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Flags       []string `json:"flags,omitempty"`
	TimeUpdated int64    `json:"time_updated,omitempty"`
}

// AdminFile is a stored file as seen by the admin file listing.
type AdminFile struct {
	Key       string `json:"key,omitempty"`
	Name      string `json:"name,omitempty"`
	Size      int64  `json:"size,omitempty"`
	Mime      string `json:"mime,omitempty"`
	Username  string `json:"username,omitempty"`
	Workspace string `json:"workspace,omitempty"`
	EntryID   string `json:"entry_id,omitempty"`
	TimeAdded string `json:"time_added,omitempty"`
}

// ServiceAccount is a non-interactive API credential.
type ServiceAccount struct {
	ID          string `json:"id,omitempty"`
	Username    string `json:"username,omitempty"`
	APIKey      string `json:"api_key,omitempty"`
	TimeCreated int64  `json:"time_created,omitempty"`
}

// Backup is a stored workspace backup object.
type Backup struct {
	Key  string `json:"key,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// WorkspaceExport is an opaque server-side export document. It is kept
// raw so it can round-trip through AdminWorkspaceImport unchanged.
type WorkspaceExport = json.RawMessage
