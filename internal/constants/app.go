// Package constants provides shared constants for the weekly calendar card
package constants

// CardType is the registry key of the weekly calendar card
const CardType = "weekly-calendar"

// CardSize is the layout weight the card reports to the dashboard grid
const CardSize = 1

// EnvPrefix is the prefix of environment variables overriding the dashboard file
const EnvPrefix = "WEEKCAL_"

// DaysPerWeek is the number of columns of a displayed week
const DaysPerWeek = 7
