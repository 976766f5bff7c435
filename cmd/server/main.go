package main

import (
	"encoding/base64"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lucas2b/ponto-inteligente-api/core"
	"github.com/lucas2b/ponto-inteligente-api/infrastructure/config"
	"github.com/lucas2b/ponto-inteligente-api/repositories"
	"github.com/lucas2b/ponto-inteligente-api/services"
	"github.com/lucas2b/ponto-inteligente-api/web/handlers"
	"github.com/lucas2b/ponto-inteligente-api/web/middlewares"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.JWT.Secret)
	if err != nil {
		log.Fatal("failed to decode JWT secret:", err)
	}

	db, err := core.Connect(cfg.Banco.DSN, cfg.Banco.MaxConexoes)
	if err != nil {
		log.Fatal(err)
	}

	if err := core.Migrate(db); err != nil {
		log.Fatal(err)
	}

	empresaRepo := repositories.NewEmpresaRepository(db)
	funcionarioRepo := repositories.NewFuncionarioRepository(db)
	lancamentoRepo := repositories.NewLancamentoRepository(db)

	jwtExpiry := time.Duration(cfg.JWT.ExpiracaoHoras) * time.Hour

	authSvc := services.NewAuthService(funcionarioRepo, jwtSecret, jwtExpiry)
	cadastroSvc := services.NewCadastroService(db, empresaRepo, funcionarioRepo, cfg.Seguranca.BcryptCost)
	empresaSvc := services.NewEmpresaService(empresaRepo)
	funcionarioSvc := services.NewFuncionarioService(funcionarioRepo, cfg.Seguranca.BcryptCost)
	lancamentoSvc := services.NewLancamentoService(lancamentoRepo, funcionarioRepo)

	r := gin.Default()
	r.Use(middlewares.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	handlers.RegisterAuth(api, authSvc)
	handlers.RegisterCadastro(api, cadastroSvc)

	protected := api.Group("")
	protected.Use(middlewares.Authentication(jwtSecret))
	admin := protected.Group("", middlewares.RequireAdmin())

	handlers.RegisterEmpresas(protected, empresaSvc)
	handlers.RegisterFuncionarios(protected, funcionarioSvc)
	handlers.RegisterLancamentos(protected, admin, lancamentoSvc, cfg.Paginacao.QtdPorPagina)

	log.Printf("ponto-inteligente listening on :%s", cfg.Servidor.Porta)
	if err := r.Run("0.0.0.0:" + cfg.Servidor.Porta); err != nil {
		log.Fatal(err)
	}
}
