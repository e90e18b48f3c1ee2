package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thanzeeha/portfolio4/cli/gate"
	"github.com/thanzeeha/portfolio4/cli/panel"
	"github.com/thanzeeha/portfolio4/editor"
	"github.com/thanzeeha/portfolio4/metal/env"
	"github.com/thanzeeha/portfolio4/metal/kernel"
	"github.com/thanzeeha/portfolio4/pkg/cli"
	"github.com/thanzeeha/portfolio4/pkg/portal"
	"github.com/thanzeeha/portfolio4/remote"
	"github.com/thanzeeha/portfolio4/storage"
)

var environment *env.Environment
var store *storage.Store

// pusher lives for the whole panel session so overlapping pushes
// serialize instead of racing each other to the gateway.
var pusher *remote.Pusher

func init() {
	secrets, err := kernel.Ignite("./../.env", portal.GetDefaultValidator())

	if err != nil {
		panic("Error loading the environment: " + err.Error())
	}

	environment = secrets
	store = kernel.MakeContentStore(environment)

	pusher, err = remote.MakePusher(
		portal.NewDefaultClient(nil),
		environment.App.URL+"/api/update-content",
		remote.Coordinates{
			Owner:  environment.Remote.Owner,
			Repo:   environment.Remote.Repo,
			Path:   environment.Remote.Path,
			Branch: environment.Remote.GetBranch(),
		},
		environment.Remote.Message,
	)

	if err != nil {
		panic("Error wiring the remote sync client: " + err.Error())
	}
}

func main() {
	cli.ClearScreen()

	guard := gate.MakeGuard(kernel.MakeVerifier(environment.Admin))

	if err := guard.CaptureInput(); err != nil {
		cli.Errorln(err.Error())
		os.Exit(1)
	}

	if guard.Rejects() {
		cli.Errorln("Invalid credentials.")
		os.Exit(1)
	}

	session := editor.Begin(store.Load())
	menu := panel.MakeMenu()

	for {
		err := menu.CaptureInput()

		if err != nil {
			cli.Errorln(err.Error())
			continue
		}

		switch menu.GetChoice() {
		case 1:
			err = editField(menu, session)
		case 2:
			err = manageSkills(menu, session)
		case 3:
			err = manageEducation(menu, session)
		case 4:
			err = manageProjects(menu, session)
		case 5:
			err = showWorkingCopy(session)
		case 6:
			err = exportBackup(menu, session)
		case 7:
			err = importBackup(menu, session)
		case 8:
			session.Commit(store)
			cli.Successln("Saved.")
		case 9:
			err = saveAndPush(session)
		case 10:
			err = resetDocument(menu, session)
		case 0:
			cli.Successln("Goodbye!")
			return
		default:
			cli.Errorln("Unknown option. Try again.")
		}

		if err != nil {
			cli.Errorln(err.Error())
		}

		cli.Blueln("Press Enter to continue...")
		menu.PrintLine()
		menu.Print()
	}
}

func editField(menu panel.Menu, session *editor.Session) error {
	field, err := menu.CaptureRequired("Field name (name, tagline, intro, avatarUrl, email, phone, linkedin, location, about, interests, resumeUrl): ")
	if err != nil {
		return err
	}

	value, err := menu.CaptureText("New value: ")
	if err != nil {
		return err
	}

	if err := session.SetField(field, value); err != nil {
		return err
	}

	cli.Successln("Field updated.")

	return nil
}

func manageSkills(menu panel.Menu, session *editor.Session) error {
	for i, skill := range session.Skills() {
		cli.Cyanln(fmt.Sprintf("  %d) %s", i, skill))
	}

	action, err := menu.CaptureRequired("Action (add, set, remove): ")
	if err != nil {
		return err
	}

	switch portal.NewStringable(action).ToLower() {
	case "add":
		session.AddSkill()
		cli.Successln("Skill added at the end of the list.")
	case "set":
		index, err := menu.CaptureIndex("Skill index: ")
		if err != nil {
			return err
		}

		value, err := menu.CaptureRequired("New value: ")
		if err != nil {
			return err
		}

		if err := session.SetSkill(index, value); err != nil {
			return err
		}

		cli.Successln("Skill replaced.")
	case "remove":
		index, err := menu.CaptureIndex("Skill index: ")
		if err != nil {
			return err
		}

		if !menu.Confirm("Remove this skill?") {
			cli.Warningln("Nothing removed.")

			return nil
		}

		if err := session.RemoveSkill(index); err != nil {
			return err
		}

		cli.Successln("Skill removed.")
	default:
		return fmt.Errorf("unknown action: %s", action)
	}

	return nil
}

func manageEducation(menu panel.Menu, session *editor.Session) error {
	for _, entry := range session.Document().Education {
		cli.Cyanln(fmt.Sprintf("  %s — %s, %s (%s)", entry.ID, entry.Level, entry.Institution, entry.Year))
	}

	action, err := menu.CaptureRequired("Action (add, patch, remove): ")
	if err != nil {
		return err
	}

	switch portal.NewStringable(action).ToLower() {
	case "add":
		entry := session.AddEducation()
		cli.Successln("New entry added at the head: " + entry.ID)
	case "patch":
		id, err := menu.CaptureRequired("Entry id: ")
		if err != nil {
			return err
		}

		field, err := menu.CaptureRequired("Field (level, institution, details, year): ")
		if err != nil {
			return err
		}

		value, err := menu.CaptureText("New value: ")
		if err != nil {
			return err
		}

		if err := session.PatchEducation(id, field, value); err != nil {
			return err
		}

		cli.Successln("Entry updated.")
	case "remove":
		id, err := menu.CaptureRequired("Entry id: ")
		if err != nil {
			return err
		}

		if !menu.Confirm("Remove this education entry?") {
			cli.Warningln("Nothing removed.")

			return nil
		}

		if err := session.RemoveEducation(id); err != nil {
			return err
		}

		cli.Successln("Entry removed.")
	default:
		return fmt.Errorf("unknown action: %s", action)
	}

	return nil
}

func manageProjects(menu panel.Menu, session *editor.Session) error {
	for _, entry := range session.Document().Projects {
		cli.Cyanln(fmt.Sprintf("  %s — %s [%s]", entry.ID, entry.Title, entry.Status))
	}

	action, err := menu.CaptureRequired("Action (add, patch, remove): ")
	if err != nil {
		return err
	}

	switch portal.NewStringable(action).ToLower() {
	case "add":
		entry := session.AddProject()
		cli.Successln("New project added at the head: " + entry.ID)
	case "patch":
		id, err := menu.CaptureRequired("Project id: ")
		if err != nil {
			return err
		}

		field, err := menu.CaptureRequired("Field (title, techStack, description, status, imageUrl, liveDemoUrl, githubUrl): ")
		if err != nil {
			return err
		}

		value, err := menu.CaptureText("New value: ")
		if err != nil {
			return err
		}

		if err := session.PatchProject(id, field, value); err != nil {
			return err
		}

		cli.Successln("Project updated.")
	case "remove":
		id, err := menu.CaptureRequired("Project id: ")
		if err != nil {
			return err
		}

		if !menu.Confirm("Remove this project?") {
			cli.Warningln("Nothing removed.")

			return nil
		}

		if err := session.RemoveProject(id); err != nil {
			return err
		}

		cli.Successln("Project removed.")
	default:
		return fmt.Errorf("unknown action: %s", action)
	}

	return nil
}

func showWorkingCopy(session *editor.Session) error {
	data, err := session.Export()
	if err != nil {
		return err
	}

	fmt.Println(string(data))

	return nil
}

func exportBackup(menu panel.Menu, session *editor.Session) error {
	path, err := menu.CaptureRequired("Backup file path: ")
	if err != nil {
		return err
	}

	data, err := session.Export()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write the backup file: %w", err)
	}

	cli.Successln("Backup written to " + path)

	return nil
}

func importBackup(menu panel.Menu, session *editor.Session) error {
	path, err := menu.CaptureRequired("Backup file path: ")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read the backup file: %w", err)
	}

	if err := session.Import(data); err != nil {
		return err
	}

	cli.Successln("Backup imported into the working copy. Save to persist it.")

	return nil
}

func saveAndPush(session *editor.Session) error {
	doc := session.Commit(store)
	cli.Successln("Saved.")

	changeID, err := pusher.Push(context.Background(), doc)
	if err != nil {
		return err
	}

	cli.Successln("Pushed to the remote store. Change: " + changeID)

	return nil
}

func resetDocument(menu panel.Menu, session *editor.Session) error {
	if !menu.Confirm("Reset the stored document to the built-in default?") {
		cli.Warningln("Nothing reset.")

		return nil
	}

	store.Reset()

	if err := session.Import(mustCanonical()); err != nil {
		return err
	}

	cli.Successln("Document reset to the default.")

	return nil
}

func mustCanonical() []byte {
	data, err := store.Load().Canonical()
	if err != nil {
		panic("could not serialize the default document: " + err.Error())
	}

	return data
}
