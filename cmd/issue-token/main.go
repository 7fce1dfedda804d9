// Command issue-token emite un JWT para un principal (desarrollo local).
//
//	go run ./cmd/issue-token -principal 0xalice
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Rentacar-api/pkg/config"
	"github.com/jhoicas/Rentacar-api/pkg/jwt"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

func main() {
	principal := flag.String("principal", "", "principal a autenticar (vacío = operador)")
	minutes := flag.Int("minutes", 0, "vigencia en minutos (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info", Output: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar configuración")
	}
	id := *principal
	if id == "" {
		id = cfg.Ledger.OperatorID
	}
	exp := cfg.JWT.Expiration
	if *minutes > 0 {
		exp = *minutes
	}

	token, err := jwt.Generate(cfg.JWT.Secret, id, cfg.JWT.Issuer, exp)
	if err != nil {
		log.Fatal().Err(err).Msg("generar token")
	}
	log.Info().Str("principal", id).Int("minutes", exp).Msg("token emitido")
	fmt.Println(token)
}
