// Package shell provides the imperative shell around the reducers of the example features.
//
// Its Store holds the current state and calls a reducer for every dispatched action.
// It follows the contract reducers expect from a store: the nil sentinel is passed exactly once,
// on the first call, and dispatches run one at a time.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
