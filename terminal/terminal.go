package terminal

import (
	"bufio"
	"fmt"
	"os"
	"syscall"

	shell "golang.org/x/crypto/ssh/terminal"

	"github.com/hzhexee/mskzi-feistel/crutils"
)

var inputReader = bufio.NewReader(os.Stdin)

// PasswordModeInput reads one line from the terminal without echoing it.
func PasswordModeInput() []byte {
	s, err := shell.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Printf(">>>>>> Input Error: %s \n", err)
		return nil
	}
	crutils.CollectEntropy()
	return s
}

// PlainTextInput reads one line from stdin, without the trailing newline.
func PlainTextInput() []byte {
	const n = byte('\n')
	txt, err := inputReader.ReadBytes(n)
	if err != nil {
		fmt.Printf(">>>>>> Input Error: %s \n", err)
		return nil
	}
	last := len(txt) - 1
	if last >= 0 && txt[last] == n {
		txt = txt[:last]
	}
	crutils.CollectEntropy()
	return txt
}
