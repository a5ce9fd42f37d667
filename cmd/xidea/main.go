package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/hzhexee/mskzi-feistel/algo/idea"
	"github.com/hzhexee/mskzi-feistel/crutils"
	"github.com/hzhexee/mskzi-feistel/terminal"
)

func help() {
	fmt.Println("xidea encrypts/decrypts a file with the IDEA cipher in CBC mode")
	fmt.Println("USAGE: xidea flags srcFile [dstFile]")
	fmt.Println("\t e encrypt")
	fmt.Println("\t d decrypt")
	fmt.Println("\t r random key (printed once, don't lose it)")
	fmt.Println("\t p print decrypted content as text, don't save")
	fmt.Println("\t h help")
}

func getKey(flags string) []byte {
	if strings.Contains(flags, "r") {
		key := make([]byte, idea.KeySize)
		if err := crutils.StochasticRand(key); err != nil {
			fmt.Printf(">>> Error: random key generation failed: %s\n", err)
			return nil
		}
		fmt.Printf("new key: %x\n", key)
		fmt.Printf("key fingerprint: %x\n", crutils.Sha2(key)[:8])
		return key
	}

	for i := 0; i < 3; i++ {
		fmt.Print("please enter the key (32 hex chars): ")
		raw := terminal.PasswordModeInput()
		if len(raw) == hex.EncodedLen(idea.KeySize) {
			key := make([]byte, idea.KeySize)
			_, err := hex.Decode(key, raw)
			crutils.AnnihilateData(raw)
			if err == nil {
				return key
			}
		} else {
			crutils.AnnihilateData(raw)
		}
		fmt.Println(">>> Error: the key must be exactly 32 hex characters")
	}
	return nil
}

func main() {
	if len(os.Args) < 3 {
		help()
		return
	}

	flags := os.Args[1]
	srcFile := os.Args[2]
	if strings.Contains(flags, "h") || strings.Contains(flags, "?") {
		help()
		return
	}

	encrypt := strings.Contains(flags, "e")
	if strings.Contains(flags, "d") {
		encrypt = false
	}

	data := loadFile(srcFile)
	key := getKey(flags)
	if key == nil {
		return
	}

	defer func() {
		crutils.AnnihilateData(key)
		crutils.ProveDestruction()
	}()

	var res []byte
	var err error
	if encrypt {
		res, err = crutils.Encrypt(key, data)
	} else {
		res, err = crutils.Decrypt(key, data)
	}
	if err != nil {
		fmt.Printf("Error encrypting/decrypting: %s\n", err.Error())
		return
	}

	if !encrypt && strings.Contains(flags, "p") {
		fmt.Print(string(res))
		fmt.Println()
	} else {
		var dstFile string
		if len(os.Args) > 3 {
			dstFile = os.Args[3]
		} else {
			dstFile = getFileName()
		}
		saveData(dstFile, res)
	}
}

func loadFile(fname string) []byte {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		fmt.Printf("Failed to load file: %s \n", err)
		os.Exit(0)
	}
	return data
}

func saveData(filename string, data []byte) {
	if len(data) == 0 {
		fmt.Println("Error: content is absent")
		return
	}

	const ntries = 5
	for i := 0; i < ntries; i++ {
		if len(filename) == 0 {
			fmt.Println("Error: empty filename, please try again")
		} else if len(filename) > 64 {
			fmt.Println("Error: illegal filename. Exit.")
			return
		} else {
			err := ioutil.WriteFile(filename, data, 0666)
			if err == nil {
				return
			}
			fmt.Printf("Failed to save file: %s \n", err)
		}
		filename = getFileName()
	}

	fmt.Printf("Failed to save file after %d tries. Exit. \n", ntries)
}

func getFileName() string {
	fmt.Println("Enter dst file name: ")
	f := terminal.PlainTextInput()
	if f == nil {
		return ""
	}
	return string(f)
}
