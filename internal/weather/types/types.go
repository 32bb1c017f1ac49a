package types

import (
	"encoding/json"
	"fmt"
)

// Record is the current-weather payload returned by OpenWeatherMap.
// Every field is optional at decode time; numbers keep their literal JSON text
// so they can be displayed exactly as the API sent them.
type Record struct {
	Name    *string     `json:"name,omitempty"`
	Sys     *Sys        `json:"sys,omitempty"`
	Main    *Main       `json:"main,omitempty"`
	Weather []Condition `json:"weather,omitempty"`
	Wind    *Wind       `json:"wind,omitempty"`
}

type Sys struct {
	Country *string `json:"country,omitempty"`
}

type Main struct {
	Temp      *json.Number `json:"temp,omitempty"`
	FeelsLike *json.Number `json:"feels_like,omitempty"`
	Humidity  *json.Number `json:"humidity,omitempty"`
	Pressure  *json.Number `json:"pressure,omitempty"`
}

type Condition struct {
	Description *string `json:"description,omitempty"`
}

type Wind struct {
	Speed *json.Number `json:"speed,omitempty"`
}

// MissingFieldError names the first required key absent from a Record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// Summary holds the eight display fields of a validated Record.
type Summary struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Temp        json.Number `json:"temperature"`
	FeelsLike   json.Number `json:"feels_like"`
	Humidity    json.Number `json:"humidity"`
	Pressure    json.Number `json:"pressure"`
	Description string      `json:"description"`
	WindSpeed   json.Number `json:"wind_speed"`
}

// Summarize extracts the display fields, checking them in the order
// name, sys.country, main.{temp,feels_like,humidity,pressure},
// weather[0].description, wind.speed.
func (r Record) Summarize() (Summary, error) {
	switch {
	case r.Name == nil:
		return Summary{}, &MissingFieldError{Field: "name"}
	case r.Sys == nil:
		return Summary{}, &MissingFieldError{Field: "sys"}
	case r.Sys.Country == nil:
		return Summary{}, &MissingFieldError{Field: "country"}
	case r.Main == nil:
		return Summary{}, &MissingFieldError{Field: "main"}
	case r.Main.Temp == nil:
		return Summary{}, &MissingFieldError{Field: "temp"}
	case r.Main.FeelsLike == nil:
		return Summary{}, &MissingFieldError{Field: "feels_like"}
	case r.Main.Humidity == nil:
		return Summary{}, &MissingFieldError{Field: "humidity"}
	case r.Main.Pressure == nil:
		return Summary{}, &MissingFieldError{Field: "pressure"}
	case len(r.Weather) == 0:
		return Summary{}, &MissingFieldError{Field: "weather"}
	case r.Weather[0].Description == nil:
		return Summary{}, &MissingFieldError{Field: "description"}
	case r.Wind == nil:
		return Summary{}, &MissingFieldError{Field: "wind"}
	case r.Wind.Speed == nil:
		return Summary{}, &MissingFieldError{Field: "speed"}
	}

	return Summary{
		City:        *r.Name,
		Country:     *r.Sys.Country,
		Temp:        *r.Main.Temp,
		FeelsLike:   *r.Main.FeelsLike,
		Humidity:    *r.Main.Humidity,
		Pressure:    *r.Main.Pressure,
		Description: *r.Weather[0].Description,
		WindSpeed:   *r.Wind.Speed,
	}, nil
}

// Validate reports the first missing display field, if any.
func (r Record) Validate() error {
	_, err := r.Summarize()
	return err
}
