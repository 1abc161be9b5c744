package usecase

import (
	"context"
	"errors"
	"testing"

	"inversure_flips/internal/domain/engine"
	"inversure_flips/internal/domain/entities"
	mock_interfaces "inversure_flips/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newUseCase(repo *mock_interfaces.MockIEstudioRepository) *EstudioUseCase {
	return NewEstudioUseCase(repo, engine.DefaultPolicy(), zerolog.Nop())
}

func studyRecord() entities.Estudio {
	return entities.Estudio{
		ID:              "est-1",
		Nombre:          "Piso Chamberí",
		Status:          entities.StatusEstudio,
		PrecioPropiedad: decimal.NewFromInt(150000),
		Valoraciones: entities.Valoraciones{
			Idealista: decimal.NewFromInt(160000),
			Tasacion:  decimal.NewFromInt(165000),
		},
	}
}

func TestEstudioUseCase_CreateEstudio(t *testing.T) {
	t.Run("invalid nombre", func(t *testing.T) {
		uc := newUseCase(nil)
		_, err := uc.CreateEstudio(context.Background(), "   ", nil)
		if !errors.Is(err, ErrInvalidNombre) {
			t.Fatalf("expected ErrInvalidNombre, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		uc := newUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estudio{})).DoAndReturn(
			func(_ context.Context, e entities.Estudio) (entities.Estudio, error) {
				if e.ID == "" || e.Nombre != "Piso Chamberí" || e.Status != entities.StatusEstudio {
					t.Fatalf("unexpected estudio: %+v", e)
				}
				if !e.PrecioPropiedad.Equal(decimal.NewFromInt(150000)) {
					t.Fatalf("precio propiedad = %s", e.PrecioPropiedad)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatal("expected timestamps")
				}
				return e, nil
			},
		)

		res, err := uc.CreateEstudio(context.Background(), " Piso Chamberí ", map[string]any{
			"precio_propiedad": "150.000,00 €",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatal("expected generated id")
		}
	})
}

func TestEstudioUseCase_Preview(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newUseCase(nil)
		_, err := uc.Preview(context.Background(), "  ", nil)
		if !errors.Is(err, ErrInvalidEstudioID) {
			t.Fatalf("expected ErrInvalidEstudioID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estudio{}, nil)

		_, err := newUseCase(repo).Preview(context.Background(), "est-1", nil)
		if !errors.Is(err, ErrEstudioNotFound) {
			t.Fatalf("expected ErrEstudioNotFound, got %v", err)
		}
	})

	t.Run("computes without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(studyRecord(), nil)
		// No Update expectation: preview must not write.

		s, err := newUseCase(repo).Preview(context.Background(), "est-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ValorAdquisicion.StringFixed(2) != "154000.00" {
			t.Fatalf("valor adquisicion = %s", s.ValorAdquisicion)
		}
		if s.BeneficioNeto.StringFixed(2) != "7650.00" {
			t.Fatalf("beneficio neto = %s", s.BeneficioNeto)
		}
	})

	t.Run("closed record returns stored snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stored := entities.EstudioEconomico{BeneficioNeto: decimal.NewFromInt(40000)}
		closed := studyRecord()
		closed.Status = entities.StatusCerradoPositivo
		closed.Snapshot = &stored

		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(closed, nil)

		s, err := newUseCase(repo).Preview(context.Background(), "est-1", map[string]any{
			"precio_propiedad": "999999",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.BeneficioNeto.Equal(decimal.NewFromInt(40000)) {
			t.Fatalf("closed record recalculated: %+v", s)
		}
	})
}

func TestEstudioUseCase_Calculate(t *testing.T) {
	t.Run("closed record rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		closed := studyRecord()
		closed.Status = entities.StatusCerrado

		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(closed, nil)
		// No Update expectation: nothing may be written.

		_, err := newUseCase(repo).Calculate(context.Background(), "est-1", nil)
		if !errors.Is(err, ErrEstudioCerrado) {
			t.Fatalf("expected ErrEstudioCerrado, got %v", err)
		}
	})

	t.Run("persists snapshot and derived fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(studyRecord(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estudio{})).DoAndReturn(
			func(_ context.Context, e entities.Estudio) (entities.Estudio, error) {
				if e.Snapshot == nil || e.SnapshotAt.IsZero() {
					t.Fatal("expected snapshot to be persisted")
				}
				if e.Snapshot.BeneficioNeto.StringFixed(2) != "7650.00" {
					t.Fatalf("beneficio neto = %s", e.Snapshot.BeneficioNeto)
				}
				if e.Notaria.StringFixed(2) != "500.00" {
					t.Fatalf("notaria = %s", e.Notaria)
				}
				return e, nil
			},
		)

		res, err := newUseCase(repo).Calculate(context.Background(), "est-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Snapshot == nil {
			t.Fatal("expected snapshot on the returned record")
		}
	})
}

// statefulRepo wires the mock as a one-record store so consecutive calls see
// each other's writes.
func statefulRepo(ctrl *gomock.Controller, initial entities.Estudio) *mock_interfaces.MockIEstudioRepository {
	current := initial
	repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), initial.ID).DoAndReturn(
		func(_ context.Context, _ string) (entities.Estudio, error) { return current, nil },
	).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estudio{})).DoAndReturn(
		func(_ context.Context, e entities.Estudio) (entities.Estudio, error) {
			current = e
			return e, nil
		},
	).AnyTimes()
	return repo
}

func TestEstudioUseCase_CalculateRecomputesAutoFees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := newUseCase(statefulRepo(ctrl, studyRecord()))

	res, err := uc.Calculate(context.Background(), "est-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Snapshot.Notaria.StringFixed(2) != "500.00" || res.Snapshot.ITP.StringFixed(2) != "3000.00" {
		t.Fatalf("initial fees = %s / %s", res.Snapshot.Notaria, res.Snapshot.ITP)
	}

	// The persisted fees above are automatic results, not manual overrides:
	// a price change must re-run the formulas.
	res, err = uc.Calculate(context.Background(), "est-1", map[string]any{
		"precio_propiedad": "400000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Snapshot.Notaria.StringFixed(2) != "800.00" {
		t.Fatalf("notaria = %s, want 800.00", res.Snapshot.Notaria)
	}
	if res.Snapshot.Registro.StringFixed(2) != "800.00" {
		t.Fatalf("registro = %s, want 800.00", res.Snapshot.Registro)
	}
	if res.Snapshot.ITP.StringFixed(2) != "8000.00" {
		t.Fatalf("itp = %s, want 8000.00", res.Snapshot.ITP)
	}
}

func TestEstudioUseCase_ManualFeeSurvivesPriceChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := newUseCase(statefulRepo(ctrl, studyRecord()))

	res, err := uc.Calculate(context.Background(), "est-1", map[string]any{"notaria": "750"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NotariaManual || res.Snapshot.Notaria.StringFixed(2) != "750.00" {
		t.Fatalf("manual notaria not recorded: %v / %s", res.NotariaManual, res.Snapshot.Notaria)
	}

	res, err = uc.Calculate(context.Background(), "est-1", map[string]any{
		"precio_propiedad": "400000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Snapshot.Notaria.StringFixed(2) != "750.00" {
		t.Fatalf("hand-typed notaria overwritten: %s", res.Snapshot.Notaria)
	}
	if res.Snapshot.Registro.StringFixed(2) != "800.00" {
		t.Fatalf("registro must stay automatic: %s", res.Snapshot.Registro)
	}

	// Blanking the field hands it back to the formula.
	res, err = uc.Calculate(context.Background(), "est-1", map[string]any{"notaria": ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NotariaManual || res.Snapshot.Notaria.StringFixed(2) != "800.00" {
		t.Fatalf("cleared notaria must recompute: %v / %s", res.NotariaManual, res.Snapshot.Notaria)
	}
}

func TestEstudioUseCase_BlankScalarClearsPersistedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rec := studyRecord()
	rec.Status = entities.StatusOperacion
	rec.Plusvalia = decimal.NewFromInt(4000)
	repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(rec, nil).Times(2)
	uc := newUseCase(repo)

	s, err := uc.Preview(context.Background(), "est-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.GastosVenta.StringFixed(2) != "4000.00" {
		t.Fatalf("gastos venta = %s, want 4000.00", s.GastosVenta)
	}

	s, err = uc.Preview(context.Background(), "est-1", map[string]any{"plusvalia": ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.GastosVenta.IsZero() {
		t.Fatalf("blanked plusvalia must clear sale costs, got %s", s.GastosVenta)
	}
}

func TestEstudioUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := newUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "est-1", "limbo")
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(studyRecord(), nil)

		_, err := newUseCase(repo).UpdateStatus(context.Background(), "est-1", entities.StatusCerrado)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("terminal state stays terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		discarded := studyRecord()
		discarded.Status = entities.StatusDescartado
		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(discarded, nil)

		_, err := newUseCase(repo).UpdateStatus(context.Background(), "est-1", entities.StatusEstudio)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("valid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(studyRecord(), nil)
		updated := studyRecord()
		updated.Status = entities.StatusReservado
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", entities.StatusReservado).Return(updated, nil)

		res, err := newUseCase(repo).UpdateStatus(context.Background(), "est-1", entities.StatusReservado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusReservado {
			t.Fatalf("status = %s", res.Status)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(studyRecord(), nil)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", entities.StatusReservado).Return(entities.Estudio{}, errors.New("db"))

		_, err := newUseCase(repo).UpdateStatus(context.Background(), "est-1", entities.StatusReservado)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstudioUseCase_SetComite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstudioRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(studyRecord(), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estudio{})).DoAndReturn(
		func(_ context.Context, e entities.Estudio) (entities.Estudio, error) {
			if e.Comite.Recomendacion != "aprobar" {
				t.Fatalf("comite = %+v", e.Comite)
			}
			return e, nil
		},
	)

	_, err := newUseCase(repo).SetComite(context.Background(), "est-1", entities.Comite{
		Recomendacion: "aprobar",
		Observaciones: "margen ajustado, vigilar obra",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
