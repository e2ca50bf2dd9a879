package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"ulascansenturk/city-weather/internal/client"
)

func main() {
	flags := pflag.NewFlagSet("weatherctl", pflag.ContinueOnError)
	flags.String("server", client.DefaultServerURL, "weather service base URL")
	flags.Duration("timeout", client.DefaultTimeout, "request timeout")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: weatherctl [--server URL] <city_name>")
		fmt.Fprintln(os.Stderr, "Example: weatherctl London")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	v := viper.New()
	_ = v.BindEnv("server", "WEATHER_SERVER_URL")
	_ = v.BindPFlag("server", flags.Lookup("server"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(2)
	}

	c := client.New(v.GetString("server"), v.GetDuration("timeout"))
	result, err := c.GetWeather(context.Background(), flags.Arg(0))

	fmt.Println(client.Render(result, err))
	if err != nil {
		os.Exit(1)
	}
}
