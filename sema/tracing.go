/*
 * Castcheck - Optional downcast checking for compiler front ends
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sema

import (
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/onflow/castcheck/common"
)

const (
	tracingCheckOperation = "check"
	tracingCastOperation  = "cast"
)

// OnRecordTraceFunc is a function that records a trace.
type OnRecordTraceFunc func(
	checker Traceable,
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

type Traceable interface {
	GetLocation() common.Location
}

var _ Traceable = &Checker{}

type Tracer struct {
	// OnRecordTrace is triggered when a trace is recorded
	OnRecordTrace OnRecordTraceFunc
	// TracingEnabled determines if tracing is enabled.
	// Tracing reports the checking of programs and of cast expressions
	TracingEnabled bool
}

func (tracer Tracer) enabled() bool {
	return tracer.TracingEnabled && tracer.OnRecordTrace != nil
}

func (tracer Tracer) reportCheckTrace(
	checker Traceable,
	castCount int,
	errorCount int,
	duration time.Duration,
) {
	tracer.OnRecordTrace(checker,
		tracingCheckOperation,
		duration,
		[]attribute.KeyValue{
			attribute.Int("casts", castCount),
			attribute.Int("errors", errorCount),
		},
	)
}

func (tracer Tracer) reportCastTrace(
	checker Traceable,
	valueType string,
	targetType string,
	classification CastClassification,
	duration time.Duration,
) {
	tracer.OnRecordTrace(checker,
		tracingCastOperation,
		duration,
		[]attribute.KeyValue{
			attribute.String("value type", valueType),
			attribute.String("target type", targetType),
			attribute.String("classification", classification.Name()),
		},
	)
}
