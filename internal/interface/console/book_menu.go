package console

import (
	"context"
	"strings"

	appcatalog "github.com/xiebiao/bookstore-manager/internal/application/catalog"
)

// bookMenu 图书管理子菜单
func (s *Shell) bookMenu(ctx context.Context) {
	for {
		s.println("")
		s.println("--- 图书管理 ---")
		s.println("1. 更新图书详情")
		s.println("2. 按类型或作者搜索图书")
		s.println("3. 返回上级菜单")
		s.print("请选择 (1-3): ")

		choice, ok := s.readLine()
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.updateBookDetails(ctx)
		case "2":
			s.searchBooksByField(ctx)
		case "3":
			return
		default:
			s.println("无效的选择,请输入1-3")
		}
	}
}

// updateBookDetails 更新图书详情
func (s *Shell) updateBookDetails(ctx context.Context) {
	bookID, ok := s.readUint("请输入要更新的图书ID: ")
	if !ok {
		return
	}
	title, ok := s.readString("请输入新书名: ")
	if !ok {
		return
	}
	author, ok := s.readString("请输入新作者: ")
	if !ok {
		return
	}
	genre, ok := s.readString("请输入新类型: ")
	if !ok {
		return
	}
	price, ok := s.readPrice("请输入新价格(元): ")
	if !ok {
		return
	}
	stock, ok := s.readNonNegativeInt("请输入新库存数量: ")
	if !ok {
		return
	}

	resp, err := s.updateBook.Execute(ctx, appcatalog.UpdateBookRequest{
		BookID: bookID,
		Title:  title,
		Author: author,
		Genre:  genre,
		Price:  price,
		Stock:  stock,
	})
	if err != nil {
		s.reportError(err)
		return
	}

	s.println("图书更新成功: ID=%d, 书名=%s, 价格=%s元, 库存=%d",
		resp.BookID, resp.Title, resp.PriceYuan, resp.Stock)
}

// searchBooksByField 按类型或作者搜索图书
// 说明:搜索字段在这里被限制为genre/author之一,再映射为封闭枚举传给用例
func (s *Shell) searchBooksByField(ctx context.Context) {
	var field appcatalog.SearchField
	for {
		input, ok := s.readString("请输入搜索字段 (genre/author): ")
		if !ok {
			return
		}
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "genre":
			field = appcatalog.SearchByGenre
		case "author":
			field = appcatalog.SearchByAuthor
		default:
			s.println("只能输入genre或author")
			continue
		}
		break
	}

	value, ok := s.readString("请输入搜索值: ")
	if !ok {
		return
	}

	resp, err := s.searchBooks.Execute(ctx, appcatalog.SearchBooksRequest{
		Field: field,
		Value: value,
	})
	if err != nil {
		s.reportError(err)
		return
	}

	if len(resp.Items) == 0 {
		s.println("没有找到匹配的图书")
		return
	}

	s.println("找到%d本图书:", len(resp.Items))
	for _, item := range resp.Items {
		s.println("  ID=%d | 书名=%s | 作者=%s | 类型=%s | 价格=%s元 | 库存=%d",
			item.ID, item.Title, item.Author, item.Genre, item.PriceYuan, item.Stock)
	}
}
