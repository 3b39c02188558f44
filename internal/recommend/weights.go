// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package recommend

// defaultWeights is the conservative correlation matrix between challenges
// (rows) and onboarding questions (columns Q1..Q10). Rows are normalized at
// engine construction so the maximum absolute value per row is 1.
//
// Row and column order must match the catalog's challenge and question order.
var defaultWeights = [][]float64{
	// Q1    Q2     Q3     Q4     Q5     Q6     Q7     Q8     Q9     Q10
	{0.75, -0.20, 0.30, 0.25, 0.10, 0.05, 0.40, 0.10, 0.20, 0.05},  // 1 DIY / thrifting
	{0.60, -0.70, 0.70, 0.00, 0.60, -0.30, 0.20, 0.10, 0.50, 0.00}, // 2 Cycle to work
	{0.40, -0.50, 0.50, 0.10, 0.20, -0.10, 0.00, 0.00, 0.10, 0.10}, // 3 Walk to supermarket
	{0.50, -0.10, 0.20, 0.85, 0.00, 0.00, 0.00, 0.00, 0.00, 0.30},  // 4 Plant / compost
	{0.20, -0.60, 0.70, 0.00, 0.75, -0.20, 0.10, 0.00, 0.20, 0.00}, // 5 Public transport
	{0.00, 0.85, -0.40, 0.00, -0.10, 0.00, 0.30, 0.60, 0.40, 0.00}, // 6 Charge EV at night
	{0.10, 0.40, -0.10, 0.00, 0.20, 0.00, 0.50, 0.10, 0.00, 0.00},  // 7 Carpool to work
	{0.00, 0.40, -0.20, 0.00, 0.10, 0.00, 0.40, 0.30, 0.00, 0.00},  // 8 Carpool children
	{0.40, -0.30, 0.60, 0.00, 0.20, 0.00, 0.30, 0.00, 0.70, 0.00},  // 9 Use rented bike
	{0.10, -0.10, 0.10, 0.20, 0.00, 0.00, 0.60, 0.00, 0.00, 0.95},  // 10 Eat plant-based
	{0.20, -0.10, 0.10, 0.20, 0.00, 0.95, 0.50, 0.00, 0.00, 0.10},  // 11 Separate household waste
	{0.00, -0.10, 0.00, 0.00, 0.00, 0.20, 0.60, 0.20, 0.20, 0.00},  // 12 Turn off unused appliances
	{0.00, 0.20, 0.00, 0.20, 0.00, 0.00, 0.30, 0.70, 0.90, 0.00},   // 13 Maintain home solar panels
	{0.30, -0.10, 0.10, 0.20, 0.10, 0.40, 0.60, 0.00, 0.00, 0.90},  // 14 Riverside/community cleanup
}
