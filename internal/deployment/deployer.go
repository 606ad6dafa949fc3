package deployment

import (
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/ssh"
)

// Deployer uploads the built binary to a remote host over SSH/SCP.
type Deployer struct {
	keyPath string
	target  string // user@host:path
}

// NewDeployer creates a deployer for the given target using the given
// private key file.
func NewDeployer(target, keyPath string) *Deployer {
	return &Deployer{
		keyPath: keyPath,
		target:  target,
	}
}

// parseTarget splits a deploy target in user@host:path form.
func (d *Deployer) parseTarget() (user, host, remoteDir string, err error) {
	at := strings.Index(d.target, "@")
	colon := strings.Index(d.target, ":")
	if at <= 0 || colon <= at+1 || colon == len(d.target)-1 {
		return "", "", "", fmt.Errorf("invalid deploy target %q: expected user@host:path", d.target)
	}
	return d.target[:at], d.target[at+1 : colon], d.target[colon+1:], nil
}

// Deploy uploads localPath to the target directory under its base name.
// The connection is opened for this one transfer and closed before
// returning.
func (d *Deployer) Deploy(localPath string) error {
	user, host, remoteDir, err := d.parseTarget()
	if err != nil {
		return err
	}

	keyData, err := os.ReadFile(d.keyPath)
	if err != nil {
		return fmt.Errorf("failed to read SSH key file %s: %w", d.keyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return fmt.Errorf("failed to parse SSH private key: %w", err)
	}

	client, err := ssh.Dial("tcp", net.JoinHostPort(host, "22"), &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // In production, use proper host key verification
		Timeout:         30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", host, err)
	}
	defer client.Close()

	filename := path.Base(localPath)
	if err := scpFile(client, localPath, path.Join(remoteDir, filename), filename); err != nil {
		return err
	}

	log.Info().
		Str("local_path", localPath).
		Str("target", d.target).
		Msg("Successfully deployed binary")

	return nil
}

// scpFile streams one file through an scp -t session on the remote side.
func scpFile(client *ssh.Client, localPath, remotePath, filename string) error {
	localFile, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file %s: %w", localPath, err)
	}
	defer localFile.Close()

	info, err := localFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat local file: %w", err)
	}

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create SSH session: %w", err)
	}
	defer session.Close()

	stdin, err := session.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdin pipe: %w", err)
	}

	if err := session.Start(fmt.Sprintf("scp -t %s", remotePath)); err != nil {
		return fmt.Errorf("failed to start SCP session: %w", err)
	}

	if _, err := fmt.Fprintf(stdin, "C0755 %d %s\n", info.Size(), filename); err != nil {
		return fmt.Errorf("failed to write SCP header: %w", err)
	}
	if _, err := io.Copy(stdin, localFile); err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}
	if _, err := stdin.Write([]byte{0}); err != nil {
		return fmt.Errorf("failed to write SCP end marker: %w", err)
	}

	stdin.Close()
	if err := session.Wait(); err != nil {
		return fmt.Errorf("SCP session failed: %w", err)
	}

	return nil
}
