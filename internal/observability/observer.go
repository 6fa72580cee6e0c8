// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Observer prints step-by-step timing for pipeline stages. A nil or
// disabled observer swallows every call, so callers never guard.
type Observer struct {
	writer io.Writer
	indent int
	on     bool
}

// NewDebug creates an observer that writes step traces to w.
func NewDebug(w io.Writer) *Observer {
	return &Observer{writer: w, on: true}
}

// Nop creates a disabled observer.
func Nop() *Observer {
	return &Observer{}
}

// Enabled reports whether the observer emits output.
func (o *Observer) Enabled() bool {
	return o != nil && o.on
}

// StartStep begins a processing step and returns its completion callback.
func (o *Observer) StartStep(component, step, target string) func(success bool, details string) {
	if !o.Enabled() {
		return func(bool, string) {}
	}

	start := time.Now()
	fmt.Fprintf(o.writer, "%s🔄 %s: %s (%s)\n", strings.Repeat("  ", o.indent), component, step, target)
	o.indent++

	return func(success bool, details string) {
		o.indent--
		duration := time.Since(start)
		indentStr := strings.Repeat("  ", o.indent)

		if success {
			fmt.Fprintf(o.writer, "%s✅ %s: %s completed (%dms) %s\n",
				indentStr, component, step, duration.Milliseconds(), details)
		} else {
			fmt.Fprintf(o.writer, "%s❌ %s: %s failed (%dms) %s\n",
				indentStr, component, step, duration.Milliseconds(), details)
		}
	}
}

// LogDetail logs a detail within the current step.
func (o *Observer) LogDetail(component, detail string) {
	if !o.Enabled() {
		return
	}
	fmt.Fprintf(o.writer, "%s   → %s: %s\n", strings.Repeat("  ", o.indent), component, detail)
}

// LogMetric logs a metric value.
func (o *Observer) LogMetric(component, metric string, value interface{}) {
	if !o.Enabled() {
		return
	}
	fmt.Fprintf(o.writer, "%s   📊 %s: %s = %v\n", strings.Repeat("  ", o.indent), component, metric, value)
}
