package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
)

func (a *app) cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "e-mail corporativo")
	senha := fs.String("senha", "", "senha (pedida no terminal quando omitida)")
	fs.Parse(args)

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Informe o e-mail: reservas login -email voce@empresa.com.br")
		return fmt.Errorf("missing email")
	}
	if *senha == "" {
		fmt.Print("Senha: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		*senha = strings.TrimSpace(line)
	}

	profile, err := a.session.Login(context.Background(), *email, *senha)
	if err != nil {
		a.notifier.Error("Não foi possível entrar. Verifique suas credenciais.")
		return err
	}

	a.notifier.Success(fmt.Sprintf("Bem-vindo, %s (%s)", profile.Nome, profile.Perfil))
	return nil
}

func (a *app) cmdLogout(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	fs.Parse(args)

	if err := a.session.Logout(); err != nil {
		a.notifier.Error("Erro ao encerrar a sessão")
		return err
	}
	a.notifier.Success("Sessão encerrada")
	return nil
}
