// Package server exposes the tabsh shell over SSH, one shell session per
// connection.
package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"log"
	"os"

	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/tabsh/tabsh/core/config"
	"github.com/tabsh/tabsh/core/proc"
	"github.com/tabsh/tabsh/core/schema"
	"github.com/tabsh/tabsh/core/shell"
)

// Server serves shell sessions over SSH.
type Server struct {
	cfg       *config.Config
	registry  *schema.Registry
	sshServer *ssh.Server
}

// New builds the server. The host key is read from keyPath, generated
// and persisted there on first use.
func New(cfg *config.Config, registry *schema.Registry, keyPath string) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		registry: registry,
	}

	signer, err := ensureHostKey(keyPath)
	if err != nil {
		return nil, fmt.Errorf("host key: %w", err)
	}

	s.sshServer = &ssh.Server{
		Addr: fmt.Sprintf(":%d", cfg.SSH.Port),
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}
	s.sshServer.AddHostKey(signer)

	return s, nil
}

func (s *Server) handleSession(sess ssh.Session) {
	ptyInfo, winch, isPTY := sess.Pty()

	sh, err := shell.New(shell.Options{
		Config:   s.cfg,
		Registry: s.registry,
		Stdin:    sess,
		Stdout:   sess,
		Stderr:   sess.Stderr(),
		Username: sess.User(),
		PTY: proc.PTY{
			Width: ptyInfo.Window.Width,
			IsPTY: isPTY,
		},
	})
	if err != nil {
		fmt.Fprintf(sess.Stderr(), "tabsh: %v\n", err)
		sess.Exit(1)
		return
	}

	// Watch for window changes.
	go func() {
		for window := range winch {
			sh.SetWindowWidth(window.Width)
		}
	}()

	sess.Exit(sh.Run())
}

// ListenAndServe blocks serving connections until Shutdown.
func (s *Server) ListenAndServe() error {
	log.Printf("- Starting SSH server on %s\n", s.sshServer.Addr)
	if err := s.sshServer.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for active sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.sshServer.Shutdown(ctx)
}

// ensureHostKey loads the host key, minting an ed25519 key on first run.
func ensureHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		return gossh.ParsePrivateKey(data)
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	block, err := gossh.MarshalPrivateKey(priv, "")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0600); err != nil {
		return nil, err
	}
	return gossh.NewSignerFromKey(priv)
}
