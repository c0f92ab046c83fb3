package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/weighin/internal/cli/formatter"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// weighinHuhTheme returns a custom huh theme using the formatter palette.
func weighinHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileFormValues holds the raw strings a setup form edits.
type profileFormValues struct {
	Unit       string
	Weight     string
	Target     string
	TargetDate string
	Height     string
	BodyFat    string
	Activity   string
	FatRatio   string
}

func profileFormValuesFrom(p *domain.Profile) profileFormValues {
	v := profileFormValues{
		Unit:     string(domain.UnitPounds),
		Activity: string(domain.ActivityModeratelyActive),
		FatRatio: formatFloat(domain.DefaultFatRatio),
	}
	if p == nil {
		return v
	}
	v.Unit = string(p.Unit)
	v.Weight = formatFloat(p.CurrentWeight)
	v.Target = formatFloat(p.TargetWeight)
	v.TargetDate = p.TargetDate.Format(domain.DateLayout)
	v.Height = formatFloat(p.HeightIn)
	if p.BodyFatPct != nil {
		v.BodyFat = formatFloat(*p.BodyFatPct * 100)
	}
	v.Activity = string(p.ActivityLevel)
	v.FatRatio = formatFloat(p.EffectiveFatRatio())
	return v
}

// apply copies the form values onto p. Values were validated by the form.
func (v profileFormValues) apply(p *domain.Profile) error {
	var err error
	p.Unit = domain.WeightUnit(v.Unit)
	if p.CurrentWeight, err = parseFloatField("weight", v.Weight); err != nil {
		return err
	}
	if p.TargetWeight, err = parseFloatField("target weight", v.Target); err != nil {
		return err
	}
	if p.HeightIn, err = parseFloatField("height", v.Height); err != nil {
		return err
	}
	if p.FatRatio, err = parseFloatField("fat ratio", v.FatRatio); err != nil {
		return err
	}
	if p.TargetDate, err = domain.ParseDate(strings.TrimSpace(v.TargetDate)); err != nil {
		return err
	}
	p.BodyFatPct = nil
	if strings.TrimSpace(v.BodyFat) != "" {
		pct, err := parseFloatField("body fat", v.BodyFat)
		if err != nil {
			return err
		}
		frac := pct / 100
		p.BodyFatPct = &frac
	}
	if p.ActivityLevel, err = parseActivity(v.Activity); err != nil {
		return err
	}
	return nil
}

// profileSetupForm builds the interactive profile wizard.
func profileSetupForm(v *profileFormValues, today time.Time) *huh.Form {
	unitOptions := []huh.Option[string]{
		huh.NewOption("Pounds (lb)", string(domain.UnitPounds)),
		huh.NewOption("Kilograms (kg)", string(domain.UnitKilograms)),
	}
	activityOptions := make([]huh.Option[string], 0, len(domain.ActivityLevels))
	for _, l := range domain.ActivityLevels {
		activityOptions = append(activityOptions, huh.NewOption(strings.ReplaceAll(string(l), "_", " "), string(l)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Weight unit").Options(unitOptions...).Value(&v.Unit),
			huh.NewInput().Title("Current weight").Value(&v.Weight).Validate(validatePositiveFloat),
			huh.NewInput().Title("Target weight").Value(&v.Target).Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Weigh-in date (YYYY-MM-DD)").
				Placeholder(today.AddDate(0, 0, 28).Format(domain.DateLayout)).
				Value(&v.TargetDate).
				Validate(futureDateValidator(today)),
		),
		huh.NewGroup(
			huh.NewInput().Title("Height (inches)").Value(&v.Height).Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Body fat % (optional)").
				Description("Enables the lean-mass BMR estimate").
				Value(&v.BodyFat).
				Validate(validateOptionalPercent),
			huh.NewSelect[string]().Title("Activity level").Options(activityOptions...).Value(&v.Activity),
			huh.NewInput().Title("Fat share of calories").Value(&v.FatRatio).Validate(validateFatRatio),
		),
	).WithTheme(weighinHuhTheme()).WithShowHelp(false)
}

func parseFloatField(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: name, Message: fmt.Sprintf("%s must be a number", name)}
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func validatePositiveFloat(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !domain.Finite(f) || f <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateOptionalPercent(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !domain.Finite(f) || f < 0 || f >= 100 {
		return fmt.Errorf("enter a percentage between 0 and 100")
	}
	return nil
}

func validateFatRatio(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !domain.Finite(f) || f < domain.MinFatRatio || f > domain.MaxFatRatio {
		return fmt.Errorf("enter a ratio between %.2f and %.2f", domain.MinFatRatio, domain.MaxFatRatio)
	}
	return nil
}

func futureDateValidator(today time.Time) func(string) error {
	return func(s string) error {
		d, err := domain.ParseDate(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("use YYYY-MM-DD")
		}
		if !d.After(today) {
			return fmt.Errorf("target date must be in the future")
		}
		return nil
	}
}
