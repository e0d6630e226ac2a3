package mutate

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/matthieukhl/crmd/internal/store"
)

// Service is the validation and mutation core. Every mutation runs
// received → validated → committed, or is rejected with a structured result;
// only storage failures surface as errors.
type Service struct {
	store    *store.Store
	validate *validator.Validate
	log      *zap.SugaredLogger
	now      func() time.Time
}

func New(st *store.Store, log *zap.SugaredLogger) *Service {
	return &Service{
		store:    st,
		validate: validator.New(),
		log:      log.With("component", "mutate"),
		now:      time.Now,
	}
}
