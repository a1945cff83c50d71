package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

const defaultTickInterval = "50ms"

type Config struct {
	TickInterval string        `json:"tick_interval"`
	MessagesPath string        `json:"messages_path"`
	Item         ItemConfig    `json:"item"`
	Storage      StorageConfig `json:"storage"`
	Nats         NatsConfig    `json:"nats"`

	TeleportConfig
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := c.tickLength(); err != nil {
		el.Add(err)
	}

	el.Add(c.TeleportConfig.validate())
	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())

	return el.Err()
}

func (c *Config) tickLength() (time.Duration, error) {
	s := c.TickInterval
	if s == "" {
		s = defaultTickInterval
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parsing tick_interval: %w", err)
	}
	if d < time.Millisecond || d > time.Second {
		return 0, fmt.Errorf("tick_interval must be between 1ms and 1s")
	}
	return d, nil
}

// ticksPerSecond converts the tick length to a whole tick rate, never below 1.
func ticksPerSecond(tick time.Duration) int {
	tps := int((time.Second + tick/2) / tick)
	if tps < 1 {
		return 1
	}
	return tps
}
