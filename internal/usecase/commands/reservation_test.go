//go:build unit

package commands_test

import (
	"context"
	"testing"

	"petboard/internal/domain/account"
	"petboard/internal/domain/reservation"
	reqdto "petboard/internal/handler/dto/request"
	"petboard/internal/infra"
	"petboard/internal/infra/db"
	"petboard/internal/usecase/commands"
	"petboard/internal/usecase/queries"
	"petboard/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// インメモリのUoW/Txフェイク。直列化の検証はE2E側で行い、
// ここでは許可判定のロジックだけを検証する。
type fakeStore struct {
	pets         map[uuid.UUID]*shared.PetSnapshot
	services     map[uuid.UUID]*shared.ServiceSnapshot
	reservations map[uuid.UUID]*reservation.Reservation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		pets:         map[uuid.UUID]*shared.PetSnapshot{},
		services:     map[uuid.UUID]*shared.ServiceSnapshot{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
	}
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) DB() db.DBTX                            { return nil }
func (t *fakeTx) Accounts() shared.AccountRepository     { return nil }
func (t *fakeTx) Pets() shared.PetRepository             { return nil }
func (t *fakeTx) Services() shared.ServiceRepository     { return nil }
func (t *fakeTx) Reservations() shared.ReservationRepository {
	return &fakeReservationRepo{store: t.store}
}
func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{store: t.store} }

type fakeReservationRepo struct {
	store *fakeStore
}

func (r *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	r.store.reservations[res.ID()] = res
	return nil
}

func (r *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.reservations, id)
	return nil
}

func (r *fakeReservationRepo) DeleteByPet(_ context.Context, petID uuid.UUID) (int64, error) {
	var n int64
	for id, res := range r.store.reservations {
		if res.PetID() == petID {
			delete(r.store.reservations, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeReservationRepo) DeleteByService(_ context.Context, serviceID uuid.UUID) (int64, error) {
	var n int64
	for id, res := range r.store.reservations {
		if res.ServiceID() == serviceID {
			delete(r.store.reservations, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeReservationRepo) CountOverlapping(_ context.Context, serviceID uuid.UUID, dates reservation.DateRange) (int64, error) {
	var n int64
	for _, res := range r.store.reservations {
		if res.ServiceID() == serviceID && res.Dates().Overlaps(dates) {
			n++
		}
	}
	return n, nil
}

type fakeReads struct {
	store *fakeStore
}

func (f *fakeReads) PetByID(_ context.Context, id uuid.UUID) (*shared.PetSnapshot, error) {
	p, ok := f.store.pets[id]
	if !ok {
		return nil, infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (f *fakeReads) ServiceByID(_ context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	s, ok := f.store.services[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return s, nil
}

func (f *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	res, ok := f.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	pet := f.store.pets[res.PetID()]
	return &shared.ReservationSnapshot{
		ID:        res.ID(),
		PetID:     res.PetID(),
		ServiceID: res.ServiceID(),
		OwnerID:   pet.OwnerID,
		StartDate: res.Dates().Start(),
		EndDate:   res.Dates().End(),
	}, nil
}

// 書き込んだ予約からビューを合成する読み取りフェイク
type fakeReservationQueries struct {
	store *fakeStore
}

func (f *fakeReservationQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	res, ok := f.store.reservations[id]
	if !ok {
		return nil, queries.ErrReservationNotFound
	}
	return &queries.ReservationView{
		ID:        res.ID(),
		PetID:     res.PetID(),
		ServiceID: res.ServiceID(),
		StartDate: res.Dates().Start(),
		EndDate:   res.Dates().End(),
	}, nil
}

func (f *fakeReservationQueries) ListByOwner(_ context.Context, _ uuid.UUID) ([]*queries.ReservationView, error) {
	return nil, nil
}

type admissionFixture struct {
	store     *fakeStore
	cmds      commands.ReservationCommands
	owner     account.Actor
	petID     uuid.UUID
	serviceID uuid.UUID
}

func newAdmissionFixture(t *testing.T, capacity *int32) *admissionFixture {
	t.Helper()
	store := newFakeStore()

	ownerID := uuid.New()
	petID := uuid.New()
	serviceID := uuid.New()

	store.pets[petID] = &shared.PetSnapshot{
		ID: petID, Name: "Rex", Type: "dog", Age: 3, OwnerID: ownerID,
	}
	store.services[serviceID] = &shared.ServiceSnapshot{
		ID: serviceID, Name: "Happy Paws", Location: "Springfield",
		Capacity: capacity, Type: "boarding", ProviderID: uuid.New(),
	}

	uow := &fakeUoW{store: store}
	cmds := commands.NewReservationCommands(uow, &fakeReservationQueries{store: store})

	return &admissionFixture{
		store:     store,
		cmds:      cmds,
		owner:     account.Actor{ID: ownerID, Role: account.RoleOwner},
		petID:     petID,
		serviceID: serviceID,
	}
}

func (f *admissionFixture) book(t *testing.T, start, end string) (*queries.ReservationView, error) {
	t.Helper()
	return f.cmds.Create(context.Background(), f.owner, reqdto.CreateReservationRequest{
		PetID:     f.petID,
		ServiceID: f.serviceID,
		StartDate: start,
		EndDate:   end,
	})
}

func capOf(n int32) *int32 { return &n }

func TestReservationCreate(t *testing.T) {
	t.Run("空きがあれば予約成立", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(2))

		view, err := f.book(t, "2026-06-02", "2026-06-05")
		require.NoError(t, err)
		assert.Equal(t, f.petID, view.PetID)
		assert.Equal(t, f.serviceID, view.ServiceID)
		assert.Len(t, f.store.reservations, 1)
	})

	t.Run("満室なら重複期間の予約は409相当で拒否", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(2))

		_, err := f.book(t, "2026-06-02", "2026-06-05")
		require.NoError(t, err)
		_, err = f.book(t, "2026-06-03", "2026-06-06")
		require.NoError(t, err)

		_, err = f.book(t, "2026-06-04", "2026-06-07")
		assert.ErrorIs(t, err, commands.ErrCapacityExceeded)
		assert.Len(t, f.store.reservations, 2)
	})

	t.Run("期間が重ならなければ満室でも成立", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(1))

		_, err := f.book(t, "2026-06-02", "2026-06-05")
		require.NoError(t, err)

		// 終了日の翌日から
		_, err = f.book(t, "2026-06-06", "2026-06-08")
		require.NoError(t, err)
	})

	t.Run("終了日と開始日が同日なら重複扱い（境界は両端含む）", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(1))

		_, err := f.book(t, "2026-06-02", "2026-06-05")
		require.NoError(t, err)

		_, err = f.book(t, "2026-06-05", "2026-06-08")
		assert.ErrorIs(t, err, commands.ErrCapacityExceeded)
	})

	t.Run("定員未設定なら無制限に受け入れる", func(t *testing.T) {
		f := newAdmissionFixture(t, nil)

		for range [10]struct{}{} {
			_, err := f.book(t, "2026-06-02", "2026-06-05")
			require.NoError(t, err)
		}
		assert.Len(t, f.store.reservations, 10)
	})

	t.Run("ペットが存在しない場合は404相当", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(1))
		f.petID = uuid.New()

		_, err := f.book(t, "2026-06-02", "2026-06-05")
		assert.ErrorIs(t, err, commands.ErrPetNotFound)
	})

	t.Run("他人のペットでは予約できない", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(1))
		f.owner = account.Actor{ID: uuid.New(), Role: account.RoleOwner}

		_, err := f.book(t, "2026-06-02", "2026-06-05")
		assert.ErrorIs(t, err, commands.ErrNotPetOwner)
	})

	t.Run("サービスが存在しない場合は404相当", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(1))
		f.serviceID = uuid.New()

		_, err := f.book(t, "2026-06-02", "2026-06-05")
		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("日付が不正なら400相当", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(1))

		_, err := f.book(t, "2026-06-05", "2026-06-02")
		assert.ErrorIs(t, err, commands.ErrInvalidDateRange)

		_, err = f.book(t, "not-a-date", "2026-06-02")
		assert.ErrorIs(t, err, commands.ErrInvalidDateRange)

		assert.Empty(t, f.store.reservations)
	})
}

func TestReservationCancel(t *testing.T) {
	t.Run("自分の予約はキャンセルできる", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(1))

		view, err := f.book(t, "2026-06-02", "2026-06-05")
		require.NoError(t, err)

		err = f.cmds.Cancel(context.Background(), f.owner, view.ID)
		require.NoError(t, err)
		assert.Empty(t, f.store.reservations)

		// キャンセルで枠が解放される
		_, err = f.book(t, "2026-06-02", "2026-06-05")
		require.NoError(t, err)
	})

	t.Run("存在しない予約は404相当", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(1))

		err := f.cmds.Cancel(context.Background(), f.owner, uuid.New())
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("他人の予約はキャンセルできない", func(t *testing.T) {
		f := newAdmissionFixture(t, capOf(1))

		view, err := f.book(t, "2026-06-02", "2026-06-05")
		require.NoError(t, err)

		stranger := account.Actor{ID: uuid.New(), Role: account.RoleOwner}
		err = f.cmds.Cancel(context.Background(), stranger, view.ID)
		assert.ErrorIs(t, err, commands.ErrNotPetOwner)
		assert.Len(t, f.store.reservations, 1)
	})
}
