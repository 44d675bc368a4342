package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// LoadFile parse the config from the file of the path
func LoadFile(path string, v interface{}) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return LoadString(string(bs), v)
}

// LoadString parse the config from the string
func LoadString(data string, v interface{}) error {
	if _, err := toml.Decode(data, v); err != nil {
		return err
	}
	return nil
}
