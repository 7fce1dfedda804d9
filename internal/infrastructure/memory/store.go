// Package memory implementa los repositorios del ledger en memoria de proceso.
// Las transacciones se serializan y trabajan sobre una copia del estado que se publica
// solo en Commit; un error descarta la copia (Rollback).
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/jhoicas/Rentacar-api/internal/application/ports"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

var _ ports.TxRunner = (*Store)(nil)

type state struct {
	users     map[string]entity.User
	cars      map[int64]entity.Car
	nextCarID int64
	treasury  int64
	entries   []entity.LedgerEntry
}

func newState() *state {
	return &state{
		users: make(map[string]entity.User),
		cars:  make(map[int64]entity.Car),
	}
}

// clone copia los mapas; los valores son structs sin punteros compartidos.
// slices.Clip obliga a que un append en la copia no escriba sobre el arreglo publicado.
func (s *state) clone() *state {
	return &state{
		users:     maps.Clone(s.users),
		cars:      maps.Clone(s.cars),
		nextCarID: s.nextCarID,
		treasury:  s.treasury,
		entries:   slices.Clip(s.entries),
	}
}

// view abstrae el acceso al estado: el publicado (Store) o la copia de una transacción (txView).
type view interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
}

// Store estado del ledger en memoria; implementa ports.TxRunner.
type Store struct {
	txMu sync.Mutex   // serializa escritores
	mu   sync.RWMutex // protege st
	st   *state
}

// NewStore crea un store vacío (tesorería en 0, próximo ID de auto = 1).
func NewStore() *Store {
	return &Store{st: newState()}
}

// Repos devuelve los repositorios sobre el estado publicado (lecturas fuera de transacción).
func (s *Store) Repos() repository.Repos {
	return reposFor(s)
}

// Run ejecuta fn con repositorios atados a una copia del estado y la publica si fn no falla.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	work := s.st.clone()
	s.mu.RUnlock()

	if err := fn(reposFor(&txView{st: work})); err != nil {
		return err
	}

	s.mu.Lock()
	s.st = work
	s.mu.Unlock()
	return nil
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

// write fuera de Run: toma el turno de escritor para no perderse ante un Commit concurrente.
func (s *Store) write(fn func(st *state) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

type txView struct {
	st *state
}

func (v *txView) read(fn func(st *state) error) error  { return fn(v.st) }
func (v *txView) write(fn func(st *state) error) error { return fn(v.st) }

func reposFor(v view) repository.Repos {
	return repository.Repos{
		Users:    &UserRepo{v: v},
		Cars:     &CarRepo{v: v},
		Treasury: &TreasuryRepo{v: v},
		Entries:  &LedgerEntryRepo{v: v},
	}
}
