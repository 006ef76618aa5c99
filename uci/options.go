package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errUnknownOption = errors.New("unknown option")

// parseSetOption splits "name <id...> [value <x...>]" into its parts.
func parseSetOption(args []string) (name, value string, err error) {
	if len(args) < 2 || strings.ToLower(args[0]) != "name" {
		return "", "", errors.New("malformed setoption command")
	}
	i := 1
	for i < len(args) && strings.ToLower(args[i]) != "value" {
		i++
	}
	name = strings.Join(args[1:i], " ")
	if i < len(args) {
		value = strings.Join(args[i+1:], " ")
	}
	return name, value, nil
}

func (c *Controller) applyOption(name, value string) error {
	cfg := c.searcher.Config()
	switch strings.ToLower(name) {
	case "depth":
		d, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("depth %q: %w", value, err)
		}
		cfg.Depth = d
	case "legacymobility":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("legacy mobility %q: %w", value, err)
		}
		cfg.LegacyMobility = b
	default:
		return fmt.Errorf("%w %q", errUnknownOption, name)
	}
	return c.searcher.SetConfig(cfg)
}

func (c *Controller) handleSetOption(args []string) {
	name, value, err := parseSetOption(args)
	if err == nil {
		err = c.applyOption(name, value)
	}
	if err != nil {
		c.log.Warn().Err(err).Strs("args", args).Msg("setoption")
		c.send("info string %v", err)
		return
	}
	c.log.Info().Str("name", name).Str("value", value).Msg("option set")
}
