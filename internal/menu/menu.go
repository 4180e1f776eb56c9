// Package menu implements the interactive text front end: an initial search whose results
// replace the saved document, followed by a command loop over the saved vacancies.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/events"
	"github.com/maxaizer/vacancy-saver/internal/normalizer"
	"github.com/maxaizer/vacancy-saver/internal/repositories"
	"github.com/maxaizer/vacancy-saver/internal/services"
)

const (
	commandSearch = iota + 1
	commandList
	commandSort
	commandDelete
	commandExit
)

const commandsPrompt = "Выберите действия:\n" +
	"1 - найти другие вакансии\n" +
	"2 - вывести найденные вакансии в терминале\n" +
	"3 - отсортировать по зарплате\n" +
	"4 - удалить вакансию из файла\n" +
	"5 - выйти"

const separatorWidth = 50

var errInputClosed = errors.New("input closed")

type vacanciesService interface {
	Search(ctx context.Context, provider entities.Provider, keyword string, quantity int) (normalizer.Result, error)
	Save(batch entities.Batch, mode services.SaveMode) error
	List() ([]entities.Vacancy, error)
	Sorted(descending bool) ([]entities.Vacancy, error)
	Delete(name, town string) (int, error)
}

type Menu struct {
	service vacanciesService
	lines   <-chan string
	out     io.Writer
}

func New(bus EventBus.Bus, service vacanciesService, in io.Reader, out io.Writer) (*Menu, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if service == nil {
		return nil, errors.New("service is nil")
	}

	m := &Menu{service: service, lines: readLines(in), out: out}
	if err := bus.Subscribe(events.VacanciesFoundTopic, m.onVacanciesFound); err != nil {
		return nil, err
	}
	return m, nil
}

// Run returns nil when the user exits or the input ends, and ctx.Err() once ctx is done,
// even while a prompt is waiting for input.
func (m *Menu) Run(ctx context.Context) error {

	result, err := m.search(ctx)
	if errors.Is(err, errInputClosed) {
		return nil
	}
	if err == nil && m.save(result.Vacancies, services.Overwrite) {
		m.println("Найденные вакансии сохранены в файл")
	}

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		var command int
		command, err = m.askInt(ctx, commandsPrompt, func(int) bool { return true }, "Введите номер команды цифрой")
		if errors.Is(err, errInputClosed) {
			break
		}

		switch command {
		case commandSearch:
			err = m.searchAgain(ctx)
		case commandList:
			err = m.printVacancies(m.service.List())
		case commandSort:
			err = m.printVacancies(m.service.Sorted(true))
		case commandDelete:
			err = m.delete(ctx)
		case commandExit:
			m.println("Всего доброго!")
			return nil
		default:
			m.println("Такая команда не найдена")
		}

		if errors.Is(err, errInputClosed) {
			break
		}
	}

	m.println("Всего доброго!")
	return nil
}

func (m *Menu) search(ctx context.Context) (normalizer.Result, error) {

	quantity, err := m.askInt(ctx, "Введите количество вакансий для поиска:",
		func(n int) bool { return n > 0 }, "Введите положительное число")
	if err != nil {
		return normalizer.Result{}, err
	}

	keyword, err := m.askLine(ctx, "Введите ключевое слово:")
	if err != nil {
		return normalizer.Result{}, err
	}

	choice, err := m.askInt(ctx, `Выберите сайт, на котором искать вакансии: "HeadHunter" - 1 или "SuperJob" - 2`,
		func(n int) bool { return n == 1 || n == 2 }, `Введите 1 или 2: "HeadHunter" - 1 или "SuperJob" - 2`)
	if err != nil {
		return normalizer.Result{}, err
	}

	provider, err := entities.ProviderFrom(strconv.Itoa(choice))
	if err != nil {
		return normalizer.Result{}, err
	}

	result, err := m.service.Search(ctx, provider, keyword, quantity)
	if err != nil {
		m.printf("Не удалось получить вакансии: %v\n", err)
		return normalizer.Result{}, err
	}
	return result, nil
}

func (m *Menu) searchAgain(ctx context.Context) error {

	result, err := m.search(ctx)
	if err != nil {
		if errors.Is(err, errInputClosed) {
			return err
		}
		return nil
	}

	answer, err := m.askLine(ctx, "Дозаписать найденные вакансии в файл? Да - 1")
	if err != nil {
		return err
	}

	if answer == "1" && m.save(result.Vacancies, services.Append) {
		m.println("Файл обновлен")
	}
	return nil
}

func (m *Menu) delete(ctx context.Context) error {

	name, err := m.askLine(ctx, "Введите название вакансии для удаления:")
	if err != nil {
		return err
	}

	town, err := m.askLine(ctx, "Введите город, в котором открыта вакансия:")
	if err != nil {
		return err
	}

	removed, err := m.service.Delete(name, town)
	switch {
	case err != nil:
		m.reportStorageError(err)
	case removed == 0:
		m.println("Вакансия не найдена")
	default:
		m.printf("Вакансия удалена (%d)\n", removed)
	}
	return nil
}

func (m *Menu) printVacancies(vacancies []entities.Vacancy, err error) error {

	if err != nil {
		m.reportStorageError(err)
		return nil
	}

	if len(vacancies) == 0 {
		m.println("Сохранённых вакансий нет")
		return nil
	}

	for _, vacancy := range vacancies {
		m.println(vacancy.String())
		m.println(strings.Repeat("-", separatorWidth))
	}
	return nil
}

func (m *Menu) save(batch entities.Batch, mode services.SaveMode) bool {
	if err := m.service.Save(batch, mode); err != nil {
		m.reportStorageError(err)
		return false
	}
	return true
}

func (m *Menu) reportStorageError(err error) {
	if errors.Is(err, repositories.ErrDocumentNotFound) {
		m.println("Сохранённых вакансий пока нет")
		return
	}
	m.printf("Ошибка при работе с файлом вакансий: %v\n", err)
}

func (m *Menu) onVacanciesFound(event events.VacanciesFound) {
	if event.Found == 0 {
		m.println("По ключевому слову не найдено вакансий")
		return
	}
	m.printf("Найдено %d вакансий\n", event.Found)
}

func (m *Menu) askLine(ctx context.Context, prompt string) (string, error) {
	m.println(prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-m.lines:
		if !ok {
			return "", errInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

// askInt repeats the prompt until the answer is an integer accepted by valid.
func (m *Menu) askInt(ctx context.Context, prompt string, valid func(int) bool, retry string) (int, error) {
	for {
		answer, err := m.askLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err == nil && valid(n) {
			return n, nil
		}
		m.println(retry)
	}
}

// readLines scans in on its own goroutine so a prompt can stop waiting when the context is
// done. The channel is closed when in ends.
func readLines(in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func (m *Menu) println(text string) {
	_, _ = fmt.Fprintln(m.out, text)
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
