package calendar

import (
	"fmt"
	"slices"
)

// CSS class names shared by the style rules and the renderers.
const (
	ClassCard     = "card"
	ClassWarning  = "warning"
	ClassCalendar = "calendar"
	ClassWeek     = "week"
	ClassDay      = "day"
	ClassToday    = "today"
)

// StyleRule is a single CSS declaration bound to a selector
type StyleRule struct {
	Selector string
	Property string
	Value    string
}

var baseRules = []StyleRule{
	{Selector: "." + ClassCard, Property: "padding", Value: "16px"},
	{Selector: "." + ClassWarning, Property: "display", Value: "block"},
	{Selector: "." + ClassWarning, Property: "color", Value: "black"},
	{Selector: "." + ClassWarning, Property: "background-color", Value: "#fce588"},
	{Selector: "." + ClassWarning, Property: "padding", Value: "8px"},
	{Selector: "." + ClassDay, Property: "text-align", Value: "center"},
	{Selector: "." + ClassDay, Property: "vertical-align", Value: "middle"},
	{Selector: "." + ClassDay, Property: "padding", Value: "8px"},
}

// BaseStyles returns a copy of the layout rules present on every card
func BaseStyles() []StyleRule {
	return slices.Clone(baseRules)
}

// WeekdayClass returns the class name carried by cells falling on weekday
func WeekdayClass(weekday int) string {
	return fmt.Sprintf("weekday%d", weekday)
}

// TodaySelector selects the today cell. It is more specific than a weekday
// selector so today keeps its colors on overridden weekdays.
const TodaySelector = "." + ClassDay + "." + ClassToday

// ResolveStyles returns the base rules, then the today rules, then one pair
// of rules per weekday color in configuration order. Color values are copied
// verbatim.
func ResolveStyles(cfg WidgetConfig) []StyleRule {
	rules := make([]StyleRule, 0, len(baseRules)+2+2*len(cfg.WeekdayColors))
	rules = append(rules, baseRules...)
	rules = append(rules,
		StyleRule{Selector: TodaySelector, Property: "background-color", Value: cfg.TodayColor.Background},
		StyleRule{Selector: TodaySelector, Property: "color", Value: cfg.TodayColor.Text},
	)
	for _, wc := range cfg.WeekdayColors {
		selector := "." + WeekdayClass(wc.Weekday)
		rules = append(rules,
			StyleRule{Selector: selector, Property: "background-color", Value: wc.Background},
			StyleRule{Selector: selector, Property: "color", Value: wc.Text},
		)
	}
	return rules
}
