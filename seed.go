package main

import (
	"errors"
	"log"

	"inventario/internal/apperrors"
	"inventario/internal/models"
	"inventario/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// seedDatabase loads a fixed starting dataset: three users, five products and
// a handful of links. It is idempotent: when the first seed user already
// exists nothing is written.
func seedDatabase(users repositories.UserRepository, products repositories.ProductRepository, links repositories.LinkRepository) {
	if _, err := users.FindByEmail("joao@example.com"); err == nil {
		log.Println("Seed data already present, skipping")
		return
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("Error checking for seed data: %v", err)
		return
	}

	seedUsers := []models.User{
		{Nome: "João Silva", CPF: "123.456.789-01", Email: "joao@example.com", Senha: "123456"},
		{Nome: "Maria Santos", CPF: "987.654.321-00", Email: "maria@example.com", Senha: "123456"},
		{Nome: "Pedro Oliveira", CPF: "111.222.333-44", Email: "pedro@example.com", Senha: "123456"},
	}
	for i := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(seedUsers[i].Senha), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing senha for seed user %s: %v", seedUsers[i].Email, err)
			return
		}
		seedUsers[i].Senha = string(hashed)
		if err := users.Create(&seedUsers[i]); err != nil {
			log.Printf("Error seeding user %s: %v", seedUsers[i].Email, err)
			return
		}
	}

	desc := func(s string) *string { return &s }
	seedProducts := []models.Product{
		{Nome: "Notebook Dell Inspiron", Preco: 2999.99, Descricao: desc("Notebook com processador Intel i5, 8GB RAM, 256GB SSD")},
		{Nome: "Mouse Wireless Logitech", Preco: 89.90, Descricao: desc("Mouse sem fio com sensor óptico de alta precisão")},
		{Nome: "Teclado Mecânico RGB", Preco: 299.99, Descricao: desc("Teclado mecânico com switches Cherry MX Blue")},
		{Nome: "Monitor LG 24\"", Preco: 599.99, Descricao: desc("Monitor Full HD com painel IPS")},
		{Nome: "Webcam HD 1080p", Preco: 199.99, Descricao: desc("Webcam com resolução Full HD e microfone integrado")},
	}
	for i := range seedProducts {
		if err := products.Create(&seedProducts[i]); err != nil {
			log.Printf("Error seeding product %s: %v", seedProducts[i].Nome, err)
			return
		}
	}

	seedLinks := []models.UserProduct{
		{UsuarioID: seedUsers[0].ID, ProdutoID: seedProducts[0].ID},
		{UsuarioID: seedUsers[0].ID, ProdutoID: seedProducts[1].ID},
		{UsuarioID: seedUsers[1].ID, ProdutoID: seedProducts[2].ID},
		{UsuarioID: seedUsers[1].ID, ProdutoID: seedProducts[3].ID},
		{UsuarioID: seedUsers[2].ID, ProdutoID: seedProducts[4].ID},
	}
	for i := range seedLinks {
		if err := links.Create(&seedLinks[i]); err != nil {
			log.Printf("Error seeding link %d: %v", i, err)
			return
		}
	}

	log.Printf("Seeded %d users, %d products, %d links", len(seedUsers), len(seedProducts), len(seedLinks))
}
