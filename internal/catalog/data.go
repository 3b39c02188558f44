// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package catalog

import "github.com/tomtom215/ecorewards/internal/models"

// defaultQuestions is the built-in onboarding questionnaire. Question order
// matters: the recommendation weight matrix columns are indexed by position,
// so inserting or reordering questions requires a matching matrix change.
var defaultQuestions = []models.Question{
	{ID: 1, Question: "Do you enjoy hands-on or DIY activities?", ShortForm: "Hands-on DIY"},
	{ID: 2, Question: "Do you own a car?", ShortForm: "Car owner"},
	{ID: 3, Question: "Could you do your daily commute without a car?", ShortForm: "Car-free commute"},
	{ID: 4, Question: "Do you have a garden, balcony or other outdoor space?", ShortForm: "Outdoor space"},
	{ID: 5, Question: "Do you live near a public transport stop?", ShortForm: "Transit access"},
	{ID: 6, Question: "Do you already sort your household waste?", ShortForm: "Waste sorting"},
	{ID: 7, Question: "Do you find it easy to stick to new routines?", ShortForm: "Habit builder"},
	{ID: 8, Question: "Are you interested in upgrading your home's energy setup?", ShortForm: "Energy upgrades"},
	{ID: 9, Question: "Do you own a bike, e-bike or similar gear?", ShortForm: "Owns green gear"},
	{ID: 10, Question: "Do you enjoy doing things together with your community?", ShortForm: "Community minded"},
}

// defaultChallenges is the built-in challenge set. Row order matters for the
// same reason as defaultQuestions: weight matrix rows are indexed by position.
var defaultChallenges = []models.Challenge{
	{ID: 1, Description: "Give an item a second life through DIY or thrifting", Category: "Lifestyle", TimeHorizon: "weekly", Impact: 15, RewardPoints: 25, BadgeTheme: "crafting_tools_icon"},
	{ID: 2, Description: "Cycle to work", Category: "Transport", TimeHorizon: "daily", Impact: 25, RewardPoints: 40, BadgeTheme: "bicycle_silhouette"},
	{ID: 3, Description: "Walk to the supermarket", Category: "Transport", TimeHorizon: "daily", Impact: 10, RewardPoints: 15, BadgeTheme: "footprints_pathway"},
	{ID: 4, Description: "Plant something or start composting", Category: "Home & Garden", TimeHorizon: "monthly", Impact: 30, RewardPoints: 50, BadgeTheme: "leaf_plant_sprout"},
	{ID: 5, Description: "Take public transport instead of the car", Category: "Transport", TimeHorizon: "daily", Impact: 20, RewardPoints: 30, BadgeTheme: "bus_train_icon"},
	{ID: 6, Description: "Charge your EV at night", Category: "Energy", TimeHorizon: "daily", Impact: 15, RewardPoints: 30, BadgeTheme: "electric_plug_moon"},
	{ID: 7, Description: "Carpool to work", Category: "Transport", TimeHorizon: "daily", Impact: 20, RewardPoints: 25, BadgeTheme: "car_group_icon"},
	{ID: 8, Description: "Carpool the children to school", Category: "Transport", TimeHorizon: "daily", Impact: 15, RewardPoints: 20, BadgeTheme: "car_group_icon_children"},
	{ID: 9, Description: "Use a rented bike for short trips", Category: "Transport", TimeHorizon: "weekly", Impact: 15, RewardPoints: 20, BadgeTheme: "bike_icon"},
	{ID: 10, Description: "Eat a plant-based meal", Category: "Food", TimeHorizon: "daily", Impact: 20, RewardPoints: 30, BadgeTheme: "leaf_plate_carrot"},
	{ID: 11, Description: "Separate your household waste", Category: "Home & Garden", TimeHorizon: "daily", Impact: 10, RewardPoints: 15, BadgeTheme: "recycling_bins"},
	{ID: 12, Description: "Turn off unused appliances", Category: "Energy", TimeHorizon: "daily", Impact: 10, RewardPoints: 15, BadgeTheme: "power_button_icon"},
	{ID: 13, Description: "Maintain your home solar panels", Category: "Energy", TimeHorizon: "monthly", Impact: 35, RewardPoints: 60, BadgeTheme: "solar_panel_sun_icon"},
	{ID: 14, Description: "Join a riverside or community cleanup", Category: "Community", TimeHorizon: "monthly", Impact: 40, RewardPoints: 75, BadgeTheme: "clean_riverside_icon"},
}

// defaultRedemptions is the fixed reward shop.
var defaultRedemptions = []models.RedemptionOption{
	{ID: 1, Title: "Plant a Tree", Description: "Plant a real tree through our partner organizations", Cost: 500, Icon: "TreePine"},
	{ID: 2, Title: "10% Discount", Description: "Get 10% off eco-friendly products", Cost: 200, Icon: "Tag"},
	{ID: 3, Title: "Carbon Offset", Description: "Offset 100kg of CO2 emissions", Cost: 300, Icon: "Cloud"},
	{ID: 4, Title: "20% Discount", Description: "Get 20% off sustainable brands", Cost: 400, Icon: "Percent"},
}

// badgeThemeIcons maps a challenge's badge theme key to the emoji rendered on
// streak-milestone badges. Unknown themes fall back to FallbackBadgeIcon.
var badgeThemeIcons = map[string]string{
	"crafting_tools_icon":     "🛠️",
	"bicycle_silhouette":      "🚲",
	"footprints_pathway":      "👣",
	"leaf_plant_sprout":       "🌱",
	"bus_train_icon":          "🚌",
	"electric_plug_moon":      "🔌",
	"car_group_icon":          "🚗",
	"car_group_icon_children": "🚗",
	"bike_icon":               "🚲",
	"leaf_plate_carrot":       "🥕",
	"recycling_bins":          "♻️",
	"power_button_icon":       "⚡",
	"solar_panel_sun_icon":    "☀️",
	"clean_riverside_icon":    "🌊",
}

// FallbackBadgeIcon is awarded when a challenge's badge theme has no icon.
const FallbackBadgeIcon = "🏆"
