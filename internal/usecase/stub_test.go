package usecase

import (
	"context"
	"sync"
	"time"

	"goppo-soppo/internal/data/entity"
	"goppo-soppo/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository stubs. Each one implements just enough of its
// interface for the service under test; unused methods return zero
// values.

type stubUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) MarkVerified(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.IsVerified = true
	}
	return nil
}

type stubOTPRepo struct {
	mu   sync.Mutex
	otps []*entity.OTP
}

func newStubOTPRepo() *stubOTPRepo { return &stubOTPRepo{} }

func (r *stubOTPRepo) Create(ctx context.Context, otp *entity.OTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *otp
	r.otps = append(r.otps, &copied)
	return nil
}

func (r *stubOTPRepo) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *entity.OTP
	for _, otp := range r.otps {
		if otp.UserID != userID {
			continue
		}
		if latest == nil || otp.CreatedAt.After(latest.CreatedAt) {
			latest = otp
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (r *stubOTPRepo) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.otps[:0]
	for _, otp := range r.otps {
		if otp.UserID != userID {
			kept = append(kept, otp)
		}
	}
	r.otps = kept
	return nil
}

type stubPlaylistRepo struct {
	mu        sync.Mutex
	playlists map[uuid.UUID]*entity.Playlist
}

func newStubPlaylistRepo() *stubPlaylistRepo {
	return &stubPlaylistRepo{playlists: make(map[uuid.UUID]*entity.Playlist)}
}

func (r *stubPlaylistRepo) Create(ctx context.Context, playlist *entity.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *playlist
	r.playlists[playlist.ID] = &copied
	return nil
}

func (r *stubPlaylistRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.playlists[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *stubPlaylistRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Playlist
	for _, p := range r.playlists {
		if p.OwnerID != nil && *p.OwnerID == ownerID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *stubPlaylistRepo) FindGlobal(ctx context.Context, limit int) ([]*entity.Playlist, error) {
	return nil, nil
}

func (r *stubPlaylistRepo) FindAll(ctx context.Context) ([]*entity.Playlist, error) {
	return nil, nil
}

func (r *stubPlaylistRepo) Update(ctx context.Context, playlist *entity.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *playlist
	r.playlists[playlist.ID] = &copied
	return nil
}

func (r *stubPlaylistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.playlists, id)
	return nil
}

type pair struct {
	a, b uuid.UUID
}

type stubPlaylistItemRepo struct {
	mu    sync.Mutex
	items map[pair]time.Time
}

func newStubPlaylistItemRepo() *stubPlaylistItemRepo {
	return &stubPlaylistItemRepo{items: make(map[pair]time.Time)}
}

func (r *stubPlaylistItemRepo) Insert(ctx context.Context, playlistID, storyID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pair{playlistID, storyID}
	if _, ok := r.items[key]; ok {
		return repository.ErrDuplicateItem
	}
	r.items[key] = time.Now()
	return nil
}

func (r *stubPlaylistItemRepo) Delete(ctx context.Context, playlistID, storyID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, pair{playlistID, storyID})
	return nil
}

func (r *stubPlaylistItemRepo) FindStories(ctx context.Context, playlistID uuid.UUID) ([]*entity.PlaylistStory, error) {
	return nil, nil
}

func (r *stubPlaylistItemRepo) CountByPlaylist(ctx context.Context, playlistID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for key := range r.items {
		if key.a == playlistID {
			n++
		}
	}
	return n, nil
}

type stubStoryRepo struct {
	mu      sync.Mutex
	stories map[uuid.UUID]*entity.Story
}

func newStubStoryRepo() *stubStoryRepo {
	return &stubStoryRepo{stories: make(map[uuid.UUID]*entity.Story)}
}

func (r *stubStoryRepo) add(story *entity.Story) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stories[story.ID] = story
}

func (r *stubStoryRepo) Create(ctx context.Context, story *entity.Story) error {
	r.add(story)
	return nil
}

func (r *stubStoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stories[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (r *stubStoryRepo) FindLatest(ctx context.Context, limit int) ([]*entity.Story, error) {
	return nil, nil
}

func (r *stubStoryRepo) FindRandom(ctx context.Context, limit int) ([]*entity.Story, error) {
	return nil, nil
}

func (r *stubStoryRepo) FindByGenre(ctx context.Context, genre string, limit int) ([]*entity.Story, error) {
	return nil, nil
}

func (r *stubStoryRepo) FindByWriter(ctx context.Context, writerID uuid.UUID) ([]*entity.Story, error) {
	return nil, nil
}

func (r *stubStoryRepo) Search(ctx context.Context, q string) ([]*entity.Story, error) {
	return nil, nil
}

func (r *stubStoryRepo) ListTitles(ctx context.Context) ([]*entity.Story, error) {
	return nil, nil
}

func (r *stubStoryRepo) DistinctGenres(ctx context.Context) ([]string, error) {
	return nil, nil
}

type stubLikeRepo struct {
	mu    sync.Mutex
	likes map[pair]bool
}

func newStubLikeRepo() *stubLikeRepo {
	return &stubLikeRepo{likes: make(map[pair]bool)}
}

func (r *stubLikeRepo) Insert(ctx context.Context, userID, storyID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pair{userID, storyID}
	if r.likes[key] {
		return false, nil
	}
	r.likes[key] = true
	return true, nil
}

func (r *stubLikeRepo) Delete(ctx context.Context, userID, storyID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pair{userID, storyID}
	if !r.likes[key] {
		return false, nil
	}
	delete(r.likes, key)
	return true, nil
}

func (r *stubLikeRepo) Exists(ctx context.Context, userID, storyID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.likes[pair{userID, storyID}], nil
}

func (r *stubLikeRepo) CountByStory(ctx context.Context, storyID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for key := range r.likes {
		if key.b == storyID {
			n++
		}
	}
	return n, nil
}

func (r *stubLikeRepo) FindStoriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Story, error) {
	return nil, nil
}

// Session and mailer stubs.

type stubSessions struct {
	mu       sync.Mutex
	sessions map[string]entity.Identity
}

func newStubSessions() *stubSessions {
	return &stubSessions{sessions: make(map[string]entity.Identity)}
}

func (s *stubSessions) Create(ctx context.Context, identity entity.Identity) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.sessions[token] = identity
	return token, nil
}

func (s *stubSessions) Get(ctx context.Context, token string) (*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if identity, ok := s.sessions[token]; ok {
		return &identity, nil
	}
	return nil, nil
}

func (s *stubSessions) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// recordingMailer captures each sent code instead of mailing it.
type recordingMailer struct {
	mu    sync.Mutex
	codes map[string]string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{codes: make(map[string]string)}
}

func (m *recordingMailer) SendOTP(ctx context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[email] = code
	return nil
}

func (m *recordingMailer) lastCode(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[email]
}
