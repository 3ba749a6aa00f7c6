// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cookbook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entriesAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_added_total",
			Help: "Total number of entries added to the cookbook",
		},
		[]string{"type"},
	)

	entriesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_rejected_total",
			Help: "Total number of entry requests rejected by validation",
		},
		[]string{"reason"},
	)

	entriesStored = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cookbook_entries",
			Help: "Current number of stored entries",
		},
		[]string{"type"},
	)

	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_resolutions_total",
			Help: "Total number of recipe resolutions by result",
		},
		[]string{"result"},
	)

	resolutionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_resolution_failures_total",
			Help: "Total number of failed recipe resolutions by reason",
		},
		[]string{"reason"},
	)

	resolutionDepth = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_resolution_depth",
			Help:    "Deepest recipe nesting reached per resolution",
			Buckets: prometheus.ExponentialBuckets(1, 2, 7),
		},
	)

	resolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_resolution_duration_seconds",
			Help:    "Recipe resolution latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
	)
)
