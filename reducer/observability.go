package reducer

import (
	"time"

	"github.com/AntonStoeckl/reducers-go/action"
)

const (
	logMsgBuilt           = "reducer: built"
	logMsgInitialized     = "reducer: state initialized"
	logMsgHandled         = "reducer: action handled"
	logMsgIgnored         = "reducer: action ignored, no handler"
	logMsgHandlerPanicked = "reducer: handler panicked"

	logAttrReducer      = "reducer"
	logAttrActionType   = "action_type"
	logAttrDurationMS   = "duration_ms"
	logAttrError        = "error"
	logAttrHandlerCount = "handler_count"
	logAttrStrategy     = "strategy"

	metricHandlers        = "reducer_handlers"
	metricInitializations = "reducer_initializations_total"
	metricActions         = "reducer_actions_total"
	metricHandleDuration  = "reducer_handle_duration_seconds"

	labelReducer    = "reducer"
	labelActionType = "action_type"
	labelOutcome    = "outcome"
	labelStrategy   = "strategy"

	outcomeHandled = "handled"
	outcomeIgnored = "ignored"

	strategyReplace = "replace"
	strategyAppend  = "append"
)

func (cfg config) observed() bool {
	return cfg.logger != nil || cfg.metricsCollector != nil
}

// actionTypeOf tolerates a nil action, which is allowed on initialization.
func actionTypeOf(a action.Dispatchable) action.TypeString {
	if a == nil {
		return ""
	}

	return a.ActionType()
}

func (cfg config) observeBuilt(strategy string, handlerCount int) {
	if cfg.logger != nil {
		cfg.logger.Debug(logMsgBuilt, logAttrReducer, cfg.name, logAttrStrategy, strategy, logAttrHandlerCount, handlerCount)
	}

	if cfg.metricsCollector != nil {
		cfg.metricsCollector.RecordValue(metricHandlers, float64(handlerCount), map[string]string{
			labelReducer:  cfg.name,
			labelStrategy: strategy,
		})
	}
}

func (cfg config) observeInitialization(a action.Dispatchable) {
	if cfg.logger != nil {
		cfg.logger.Debug(logMsgInitialized, logAttrReducer, cfg.name, logAttrActionType, actionTypeOf(a))
	}

	if cfg.metricsCollector != nil {
		cfg.metricsCollector.IncrementCounter(metricInitializations, map[string]string{
			labelReducer: cfg.name,
		})
	}
}

func (cfg config) observeIgnored(actionType action.TypeString) {
	if cfg.logger != nil {
		cfg.logger.Debug(logMsgIgnored, logAttrReducer, cfg.name, logAttrActionType, actionType)
	}

	if cfg.metricsCollector != nil {
		cfg.metricsCollector.IncrementCounter(metricActions, map[string]string{
			labelReducer:    cfg.name,
			labelActionType: actionType,
			labelOutcome:    outcomeIgnored,
		})
	}
}

func (cfg config) observeHandled(actionType action.TypeString, duration time.Duration) {
	if cfg.logger != nil {
		cfg.logger.Debug(
			logMsgHandled,
			logAttrReducer, cfg.name,
			logAttrActionType, actionType,
			logAttrDurationMS, toMilliseconds(duration),
		)
	}

	if cfg.metricsCollector != nil {
		labels := map[string]string{
			labelReducer:    cfg.name,
			labelActionType: actionType,
			labelOutcome:    outcomeHandled,
		}
		cfg.metricsCollector.IncrementCounter(metricActions, labels)
		cfg.metricsCollector.RecordDuration(metricHandleDuration, duration, labels)
	}
}

func (cfg config) logHandlerPanic(actionType action.TypeString, recovered any) {
	if cfg.logger == nil {
		return
	}

	var errMsg any = recovered
	if err, ok := recovered.(error); ok {
		errMsg = err.Error()
	}

	cfg.logger.Error(logMsgHandlerPanicked, logAttrReducer, cfg.name, logAttrActionType, actionType, logAttrError, errMsg)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return float64(d.Round(time.Microsecond).Microseconds()) / 1000
}
