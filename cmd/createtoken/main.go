// Mints an access token for manual API testing.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lucas2b/ponto-inteligente-api/core"
	"github.com/lucas2b/ponto-inteligente-api/security"
)

func main() {
	id := flag.Uint64("id", 1, "funcionario id")
	email := flag.String("email", "admin@example.com", "funcionario email")
	admin := flag.Bool("admin", false, "issue an admin token")
	horas := flag.Int("horas", 8, "token lifetime in hours")
	flag.Parse()

	secret, err := base64.StdEncoding.DecodeString(os.Getenv("PONTO_SIGNING_SECRET"))
	if err != nil || len(secret) == 0 {
		log.Fatal("PONTO_SIGNING_SECRET must hold the base64 encoded signing secret")
	}

	perfil := core.PerfilUsuario
	if *admin {
		perfil = core.PerfilAdmin
	}

	token, err := security.CreateIdentityToken(security.Identity{
		FuncionarioID: *id,
		Email:         *email,
		Perfil:        perfil,
	}, secret, time.Duration(*horas)*time.Hour)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
