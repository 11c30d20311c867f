package member

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicehp-backend/internal/apperr"
)

type fakeRepo struct {
	members []*Member
	nextID  int64
}

func newFakeRepo() *fakeRepo { return &fakeRepo{nextID: 1} }

func (f *fakeRepo) List(ctx context.Context) ([]*Member, error) { return f.members, nil }

func (f *fakeRepo) FindActiveByPhone(ctx context.Context, phone string) (*Member, error) {
	for _, m := range f.members {
		if m.IsActive && m.Phone == phone {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, m *Member) (*Member, error) {
	copied := *m
	copied.ID = f.nextID
	copied.Code = fmt.Sprintf("M%03d", copied.ID)
	copied.IsActive = true
	f.nextID++
	f.members = append(f.members, &copied)
	return &copied, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, m *Member) error {
	for _, existing := range f.members {
		if existing.ID == id {
			existing.Name = m.Name
			existing.Phone = m.Phone
			existing.Email = m.Email
			existing.Address = m.Address
			return nil
		}
	}
	return apperr.NotFound("member not found")
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	for i, m := range f.members {
		if m.ID == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("member not found")
}

func TestCreateMember(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.CreateMember(context.Background(), UpsertMemberRequest{Name: "Budi"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.CreateMember(context.Background(), UpsertMemberRequest{Phone: "0812"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	m, err := svc.CreateMember(context.Background(), UpsertMemberRequest{Name: "Budi", Phone: "081234567890"})
	require.NoError(t, err)
	assert.Equal(t, "M001", m.Code)
	assert.True(t, m.IsActive)
}

func TestMemberCodesFollowSerial(t *testing.T) {
	svc := NewService(newFakeRepo())

	for i, want := range []string{"M001", "M002", "M003"} {
		m, err := svc.CreateMember(context.Background(), UpsertMemberRequest{
			Name:  fmt.Sprintf("Member %d", i+1),
			Phone: fmt.Sprintf("0812%04d", i),
		})
		require.NoError(t, err)
		assert.Equal(t, want, m.Code)
	}
}

func TestUpdateMemberValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	m, err := svc.CreateMember(context.Background(), UpsertMemberRequest{Name: "Budi", Phone: "0812"})
	require.NoError(t, err)

	err = svc.UpdateMember(context.Background(), m.ID, UpsertMemberRequest{Name: "", Phone: "0812"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	require.NoError(t, svc.UpdateMember(context.Background(), m.ID, UpsertMemberRequest{Name: "Budi S", Phone: "0813"}))
	assert.Equal(t, "Budi S", repo.members[0].Name)
	assert.Equal(t, "M001", repo.members[0].Code)
}
