package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/technologicalMayhem/human-date-parser/datetime"
)

// config is the resolved view of flags and HUMANDATE_* variables.
type config struct {
	Ref         string
	JSON        bool
	Unqualified datetime.UnqualifiedPolicy
	WeekdayTime datetime.WeekdayTimePolicy
	LogLevel    string
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Ref:      strings.TrimSpace(v.GetString("ref")),
		JSON:     v.GetBool("json"),
		LogLevel: v.GetString("log-level"),
	}

	var err error
	if cfg.Unqualified, err = datetime.ParseUnqualifiedPolicy(strings.ToLower(v.GetString("unqualified-weekday"))); err != nil {
		return config{}, errors.Wrap(err, "invalid --unqualified-weekday")
	}
	if cfg.WeekdayTime, err = datetime.ParseWeekdayTimePolicy(strings.ToLower(v.GetString("weekday-time"))); err != nil {
		return config{}, errors.Wrap(err, "invalid --weekday-time")
	}
	return cfg, nil
}
