package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	pkg "github.com/lan-twttr/lantwttr/pkg/internal"
	"github.com/lan-twttr/lantwttr/pkg/internal/bot"
	"github.com/lan-twttr/lantwttr/pkg/internal/cache"
	"github.com/lan-twttr/lantwttr/pkg/internal/database"
	"github.com/lan-twttr/lantwttr/pkg/internal/http"
	"github.com/lan-twttr/lantwttr/pkg/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" _        _    _   _   _____          _   _\n| |      / \\  | \\ | | |_   _|_      _| |_| |_ _ __\n| |     / _ \\ |  \\| |   | | \\ \\ /\\ / / __| __| '__|\n| |___ / ___ \\| |\\  |   | |  \\ V  V /| |_| |_| |\n|_____/_/   \\_\\_| \\_|   |_|   \\_/\\_/  \\__|\\__|_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("LAN Twttr"), pkg.AppVersion)
	fmt.Printf("The tiny social feed with resident bots\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Local cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing local cache.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// First-run seeds
	if err := services.SeedPersonas(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when seeding default personas.")
	}
	if err := services.SeedPromptTemplate(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when seeding prompt template.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	if viper.GetBool("bot.enabled") {
		interval := viper.GetString("bot.interval")
		if len(interval) == 0 {
			interval = "30m"
		}
		quartz.AddFunc(fmt.Sprintf("@every %s", interval), func() {
			if err := bot.NewAgent().Run(context.Background()); err != nil {
				log.Error().Err(err).Msg("An error occurred when running bot cycle.")
			}
		})
	}
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
